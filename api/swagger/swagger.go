package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Teachers Calendar API",
        "description": "Daily lesson cache built from the school calendar",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Sync", "description": "Calendar to lesson cache sync"},
        {"name": "Lessons", "description": "The day's cached lessons"},
        {"name": "Students", "description": "Roster and folder lookups"},
        {"name": "History", "description": "Lesson history entries"},
        {"name": "Documents", "description": "Lesson note and evaluation PDFs"},
        {"name": "Evaluations", "description": "Student evaluation scores"}
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/sync": {
            "post": {
                "tags": ["Sync"],
                "summary": "Rebuild the day's lesson cache from the calendar",
                "parameters": [
                    {"name": "payload", "in": "body", "required": false, "schema": {"$ref": "#/definitions/SyncRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Invalid date"},
                    "502": {"description": "Calendar unavailable"}
                }
            }
        },
        "/lessons": {
            "get": {
                "tags": ["Lessons"],
                "summary": "List the day's cached lessons",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/lessons/statuses": {
            "get": {
                "tags": ["Lessons"],
                "summary": "List the operator flags of the cached lessons",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/lessons/export": {
            "get": {
                "tags": ["Lessons"],
                "summary": "Export the day's cached lessons",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/lessons/{eventId}/status": {
            "patch": {
                "tags": ["Lessons"],
                "summary": "Flip one operator flag on a cached lesson",
                "parameters": [
                    {"name": "eventId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StatusUpdateRequest"}}
                ],
                "responses": {
                    "204": {"description": "Updated"},
                    "404": {"description": "Unknown event"}
                }
            }
        },
        "/students/{name}/links": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a student's document links",
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown student"}
                }
            }
        },
        "/students/{name}/evaluations": {
            "get": {
                "tags": ["Evaluations"],
                "summary": "List a student's evaluation scores",
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/folders": {
            "get": {
                "tags": ["Students"],
                "summary": "List lesson folders and active teachers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/folders/{folderKey}/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List the student names attached to a lesson folder",
                "parameters": [
                    {"name": "folderKey", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/folders/{folderKey}/history": {
            "get": {
                "tags": ["History"],
                "summary": "List a lesson folder's history",
                "parameters": [
                    {"name": "folderKey", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/history": {
            "post": {
                "tags": ["History"],
                "summary": "Append a lesson history entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/HistoryEntryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/documents/lesson-note": {
            "post": {
                "tags": ["Documents"],
                "summary": "Render and store a lesson-note PDF",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LessonNoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/documents/files/{path}": {
            "get": {
                "tags": ["Documents"],
                "summary": "Download a stored document",
                "parameters": [
                    {"name": "path", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "404": {"description": "Unknown document"}
                }
            },
            "delete": {
                "tags": ["Documents"],
                "summary": "Delete a stored document",
                "parameters": [
                    {"name": "path", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Unknown document"}
                }
            }
        },
        "/documents/evaluation": {
            "post": {
                "tags": ["Documents"],
                "summary": "Render and store an evaluation PDF",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EvaluationPDFRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "SyncRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "25/12/2026"}
            }
        },
        "StatusUpdateRequest": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "field": {"type": "string", "enum": ["pdfUploaded", "historyRecorded"]},
                "value": {"type": "boolean"}
            }
        },
        "HistoryEntryRequest": {
            "type": "object",
            "required": ["eventId", "folderName", "date", "teacher"],
            "properties": {
                "eventId": {"type": "string"},
                "folderName": {"type": "string"},
                "date": {"type": "string"},
                "teacher": {"type": "string"},
                "warmUpTopic": {"type": "string"},
                "unitPages": {"type": "string"},
                "homework": {"type": "string"},
                "comments": {"type": "string"},
                "studentRequests": {"type": "string"},
                "advice": {"type": "string"}
            }
        },
        "LessonNoteRequest": {
            "type": "object",
            "required": ["eventId", "folderName", "studentName", "date"],
            "properties": {
                "eventId": {"type": "string"},
                "folderName": {"type": "string"},
                "studentName": {"type": "string"},
                "date": {"type": "string"},
                "teacher": {"type": "string"},
                "warmUpTopic": {"type": "string"},
                "unitPages": {"type": "string"},
                "homework": {"type": "string"},
                "comments": {"type": "string"},
                "studentRequests": {"type": "string"},
                "advice": {"type": "string"}
            }
        },
        "EvaluationPDFRequest": {
            "type": "object",
            "required": ["studentName"],
            "properties": {
                "studentName": {"type": "string"},
                "level": {"type": "string"},
                "textbook": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
