// Package docs registers the OpenAPI document for the class API with swag
// keep paths in step with the @Router annotations on the handlers
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{escape .Description}}",
    "version": "{{.Version}}"
  },
  "paths": {
    "/classes": {
      "post": {
        "tags": ["Classes"],
        "summary": "Schedule a class",
        "operationId": "classesCreate",
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CreateClassInput"}}}
        },
        "responses": {
          "201": {"description": "created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ClassEnvelope"}}}},
          "422": {"description": "course does not exist", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/classes/tutors/{discordID}": {
      "get": {
        "tags": ["Classes"],
        "summary": "Open classes of a tutor from the last ten days on",
        "operationId": "classesForTutor",
        "parameters": [{"name": "discordID", "in": "path", "required": true, "schema": {"type": "string"}, "example": "mara#0420"}],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TutorClassesEnvelope"}}}}
        }
      }
    },
    "/classes/{classID}": {
      "get": {
        "tags": ["Classes"],
        "summary": "Get a class",
        "operationId": "classesGet",
        "parameters": [{"$ref": "#/components/parameters/ClassID"}],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ClassEnvelope"}}}},
          "412": {"$ref": "#/components/responses/NoSuchClass"}
        }
      }
    },
    "/classes/{classID}/status": {
      "patch": {
        "tags": ["Classes"],
        "summary": "Change the status of a class",
        "operationId": "classesUpdateStatus",
        "parameters": [{"$ref": "#/components/parameters/ClassID"}],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/UpdateStatusInput"}}}
        },
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ClassEnvelope"}}}},
          "412": {"$ref": "#/components/responses/NoSuchClass"}
        }
      }
    },
    "/classes/{classID}/events": {
      "get": {
        "tags": ["Classes"],
        "summary": "Journal of a class, newest first",
        "operationId": "classesEvents",
        "parameters": [{"$ref": "#/components/parameters/ClassID"}],
        "responses": {
          "200": {"description": "ok, empty when the journal is off", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/EventsEnvelope"}}}},
          "412": {"$ref": "#/components/responses/NoSuchClass"}
        }
      }
    },
    "/meta/health": {"get": {"tags": ["Meta"], "summary": "Health check", "operationId": "metaHealth", "responses": {"200": {"description": "ok"}}}},
    "/meta/ready": {"get": {"tags": ["Meta"], "summary": "Readiness probe with dependency checks", "operationId": "metaReady", "responses": {"200": {"description": "ok"}}}},
    "/meta/version": {"get": {"tags": ["Meta"], "summary": "Build and version info", "operationId": "metaVersion", "responses": {"200": {"description": "ok"}}}},
    "/meta/service": {"get": {"tags": ["Meta"], "summary": "Service info and uptime", "operationId": "metaService", "responses": {"200": {"description": "ok"}}}}
  },
  "components": {
    "parameters": {
      "ClassID": {"name": "classID", "in": "path", "required": true, "schema": {"type": "integer"}, "example": 42}
    },
    "responses": {
      "NoSuchClass": {
        "description": "no class with that id",
        "content": {"application/json": {
          "schema": {"$ref": "#/components/schemas/ErrorResponse"},
          "example": {"status_code": 412, "status": "Precondition Failed", "code": 13, "error": "There is not class with that ID."}
        }}
      }
    },
    "schemas": {
      "Class": {
        "type": "object",
        "properties": {
          "id": {"type": "integer", "example": 42},
          "course_id": {"type": "integer", "example": 7},
          "status": {"type": "string", "enum": ["Empty", "Rescheduled", "Completed", "Absent", "Cancelled"]},
          "week": {"type": "integer", "example": 3},
          "date": {"type": "string", "format": "date", "example": "2024-03-01"},
          "is_paid": {"type": "boolean"},
          "day": {"type": "string", "example": "Friday"}
        }
      },
      "TutorClass": {
        "type": "object",
        "properties": {
          "name": {"type": "string", "example": "B2 English"},
          "student": {"type": "string", "example": "Ada, Lovelace"},
          "date": {"type": "string", "format": "date", "example": "2024-03-01"},
          "id": {"type": "integer", "example": 42}
        }
      },
      "Event": {
        "type": "object",
        "properties": {
          "event_id": {"type": "string", "format": "uuid"},
          "kind": {"type": "string", "enum": ["class.created", "class.status_changed"]},
          "class_id": {"type": "integer", "example": 42},
          "course_id": {"type": "integer", "example": 7},
          "status": {"type": "string", "example": "Empty"},
          "actor": {"type": "string", "example": "tutorbot"},
          "at": {"type": "string", "format": "date-time"}
        }
      },
      "EventsEnvelope": {
        "type": "object",
        "properties": {
          "status_code": {"type": "integer"},
          "status": {"type": "string"},
          "request_id": {"type": "string"},
          "data": {"type": "array", "items": {"$ref": "#/components/schemas/Event"}}
        }
      },
      "CreateClassInput": {
        "type": "object",
        "required": ["course_id", "date"],
        "properties": {
          "course_id": {"type": "integer", "minimum": 1},
          "week": {"type": "integer", "minimum": 0},
          "date": {"type": "string", "format": "date"},
          "day": {"type": "string", "description": "weekday name, defaults to the weekday of date"}
        }
      },
      "UpdateStatusInput": {
        "type": "object",
        "required": ["status"],
        "properties": {"status": {"type": "string", "enum": ["Empty", "Rescheduled", "Completed", "Absent", "Cancelled"]}}
      },
      "ClassEnvelope": {
        "type": "object",
        "properties": {
          "status_code": {"type": "integer"},
          "status": {"type": "string"},
          "request_id": {"type": "string"},
          "data": {"$ref": "#/components/schemas/Class"}
        }
      },
      "TutorClassesEnvelope": {
        "type": "object",
        "properties": {
          "status_code": {"type": "integer"},
          "status": {"type": "string"},
          "request_id": {"type": "string"},
          "data": {"type": "array", "items": {"$ref": "#/components/schemas/TutorClass"}}
        }
      }
    }
  }
}`

// SwaggerInfo holds the exported document info
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "tutorhub API",
	Description:      "Tutoring classes: schedules, creation and status changes.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
