package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tutorhub/internal/modkit/httpkit"
	perr "tutorhub/internal/platform/errors"
	phttp "tutorhub/internal/platform/net/http"
	"tutorhub/internal/services/api/classes/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeSvc struct {
	existing  map[int]bool
	existsErr error

	created domain.CreateClassInput
	status  domain.UpdateStatusInput
	handle  string
}

func (f *fakeSvc) Exists(_ context.Context, id int) error {
	if f.existsErr != nil {
		return f.existsErr
	}
	if !f.existing[id] {
		return perr.Preconditionf(domain.MsgNoSuchClass)
	}
	return nil
}

func (f *fakeSvc) TutorClasses(_ context.Context, discordID string) ([]domain.TutorClass, error) {
	f.handle = discordID
	if discordID == "broken" {
		return nil, perr.Wrap(errors.New("db gone"), perr.ErrorCodeBadRequest, "query tutor classes")
	}
	return []domain.TutorClass{{Name: "B2 English", Student: "Ada, Lovelace", Date: "2024-03-02", ID: 3}}, nil
}

func (f *fakeSvc) Create(_ context.Context, in domain.CreateClassInput) (domain.Class, error) {
	f.created = in
	if in.CourseID == 404 {
		return domain.Class{}, perr.WithField(perr.New(perr.ErrorCodeInvalidArgument, "unknown course"), "course_id")
	}
	return domain.Class{ID: 11, CourseID: in.CourseID, Status: domain.StatusEmpty, Week: in.Week, Date: in.Date, Day: "Friday"}, nil
}

func (f *fakeSvc) Get(_ context.Context, id int) (domain.Class, error) {
	return domain.Class{ID: id, Status: domain.StatusEmpty}, nil
}

func (f *fakeSvc) UpdateStatus(_ context.Context, id int, in domain.UpdateStatusInput) (domain.Class, error) {
	f.status = in
	return domain.Class{ID: id, Status: in.Status}, nil
}

func (f *fakeSvc) History(_ context.Context, id int) ([]domain.Event, error) {
	return []domain.Event{{Kind: domain.EventCreated, ClassID: id}}, nil
}

func mount(f *fakeSvc) stdhttp.Handler {
	m := chi.NewRouter()
	phttp.AdaptChi(m).Route("/classes", func(r httpkit.Router) { Register(r, f) })
	return m
}

func do(t *testing.T, h stdhttp.Handler, method, path, body string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	h.ServeHTTP(rec, req)
	var env phttp.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestRequireClass(t *testing.T) {
	f := &fakeSvc{existing: map[int]bool{5: true}}
	h := mount(f)

	rec, env := do(t, h, stdhttp.MethodGet, "/classes/6", "")
	require.Equal(t, stdhttp.StatusPreconditionFailed, rec.Code)
	require.Equal(t, "There is not class with that ID.", env.Error)
	require.Equal(t, perr.ErrorCodePrecondition, env.Code)

	rec, env = do(t, h, stdhttp.MethodGet, "/classes/abc", "")
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	require.Equal(t, "classID", env.Field)

	rec, _ = do(t, h, stdhttp.MethodGet, "/classes/5", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	f.existsErr = perr.Wrap(errors.New("timeout"), perr.ErrorCodeBadRequest, "count classes")
	rec, _ = do(t, h, stdhttp.MethodGet, "/classes/5", "")
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestRequireClass_PassesID(t *testing.T) {
	var seen int
	next := stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		seen = ClassID(r)
		w.WriteHeader(stdhttp.StatusNoContent)
	})
	m := chi.NewRouter()
	m.With(RequireClass(&fakeSvc{existing: map[int]bool{42: true}})).Get("/{classID}", next)

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/42", nil))
	require.Equal(t, stdhttp.StatusNoContent, rec.Code)
	require.Equal(t, 42, seen)

	seen = 0
	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/0", nil))
	require.Equal(t, stdhttp.StatusPreconditionFailed, rec.Code)
	require.Zero(t, seen)
}

func TestRequireClass_NonPositiveIDsAreUnknown(t *testing.T) {
	h := mount(&fakeSvc{existing: map[int]bool{1: true}})
	for _, path := range []string{"/classes/0", "/classes/-3", "/classes/0/events", "/classes/-1/status"} {
		t.Run(path, func(t *testing.T) {
			method := stdhttp.MethodGet
			body := ""
			if strings.HasSuffix(path, "/status") {
				method, body = stdhttp.MethodPatch, `{"status":"Completed"}`
			}
			rec, env := do(t, h, method, path, body)
			require.Equal(t, stdhttp.StatusPreconditionFailed, rec.Code)
			require.Equal(t, domain.MsgNoSuchClass, env.Error)
		})
	}

	rec, env := do(t, h, stdhttp.MethodGet, "/classes/1.5", "")
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	require.Equal(t, "classID", env.Field)
}

func TestTutorClasses(t *testing.T) {
	f := &fakeSvc{}
	h := mount(f)

	rec, env := do(t, h, stdhttp.MethodGet, "/classes/tutors/Mara%230420", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	require.Equal(t, "Mara#0420", f.handle)

	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.JSONEq(t, `[{"name":"B2 English","student":"Ada, Lovelace","date":"2024-03-02","id":3}]`, string(raw))

	rec, _ = do(t, h, stdhttp.MethodGet, "/classes/tutors/broken", "")
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestCreate(t *testing.T) {
	f := &fakeSvc{}
	h := mount(f)

	rec, env := do(t, h, stdhttp.MethodPost, "/classes/", `{"course_id":7,"week":3,"date":"2024-03-01"}`)
	require.Equal(t, stdhttp.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, 7, f.created.CourseID)
	require.NotNil(t, env.Data)

	cases := []struct {
		name, body, field string
		want              int
	}{
		{"missing course", `{"week":1,"date":"2024-03-01"}`, "course_id", stdhttp.StatusBadRequest},
		{"bad date", `{"course_id":7,"date":"01/03/2024"}`, "date", stdhttp.StatusBadRequest},
		{"negative week", `{"course_id":7,"week":-1,"date":"2024-03-01"}`, "week", stdhttp.StatusBadRequest},
		{"blank day", `{"course_id":7,"date":"2024-03-01","day":"   "}`, "day", stdhttp.StatusBadRequest},
		{"unknown field", `{"course_id":7,"date":"2024-03-01","paid":true}`, "", stdhttp.StatusBadRequest},
		{"unknown course", `{"course_id":404,"date":"2024-03-01"}`, "course_id", stdhttp.StatusUnprocessableEntity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, env := do(t, h, stdhttp.MethodPost, "/classes/", c.body)
			require.Equal(t, c.want, rec.Code, rec.Body.String())
			if c.field != "" {
				require.Equal(t, c.field, env.Field)
			}
		})
	}
}

func TestUpdateStatusAndHistory(t *testing.T) {
	f := &fakeSvc{existing: map[int]bool{5: true}}
	h := mount(f)

	rec, _ := do(t, h, stdhttp.MethodPatch, "/classes/5/status", `{"status":"Completed"}`)
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, domain.StatusCompleted, f.status.Status)

	rec, env := do(t, h, stdhttp.MethodPatch, "/classes/5/status", `{"status":"Lost"}`)
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	require.Equal(t, "status", env.Field)

	rec, _ = do(t, h, stdhttp.MethodPatch, "/classes/6/status", `{"status":"Completed"}`)
	require.Equal(t, stdhttp.StatusPreconditionFailed, rec.Code)

	rec, _ = do(t, h, stdhttp.MethodGet, "/classes/5/events", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
}
