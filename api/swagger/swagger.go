package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Acehive Admin API",
        "description": "Staff console backend for the academic resource catalog",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Session flow"},
        {"name": "Resources", "description": "Classified resource submission pipeline"},
        {"name": "Browse", "description": "Generic table viewer"},
        {"name": "Dashboard", "description": "Aggregate count widgets and taxonomy"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Check credentials and issue a session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "End the current session",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/resources": {
            "post": {
                "tags": ["Resources"],
                "summary": "Submit a classified resource record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitResourceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error"},
                    "409": {"description": "A submission is already in flight"}
                }
            }
        },
        "/resources/status": {
            "get": {
                "tags": ["Resources"],
                "summary": "Current submission controller state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/resources/acknowledge": {
            "post": {
                "tags": ["Resources"],
                "summary": "Acknowledge a settled submission",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tables/{name}": {
            "get": {
                "tags": ["Browse"],
                "summary": "Fetch a table and replace the browsing snapshot",
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Table not browsable"},
                    "502": {"description": "Fetch failed"}
                }
            }
        },
        "/tables/{name}/filters": {
            "post": {
                "tags": ["Browse"],
                "summary": "Apply composable filters over the current snapshot",
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BrowseQuery"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Browse"],
                "summary": "Clear all filters and restore the full row set",
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tables/{name}/search": {
            "get": {
                "tags": ["Browse"],
                "summary": "Live title search over the full snapshot",
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"},
                    {"name": "q", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tables/{name}/export": {
            "get": {
                "tags": ["Browse"],
                "summary": "Export the current filtered view as CSV or PDF",
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered file"}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Aggregate count widgets",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/taxonomy": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Degree taxonomy and classification options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "SubmitResourceRequest": {
            "type": "object",
            "properties": {
                "year": {"type": "string", "enum": ["1st Year", "2nd Year", "3rd Year"]},
                "degree": {"type": "string"},
                "specialisation": {"type": "string"},
                "subject": {"type": "string"},
                "subject_type": {"type": "string", "enum": ["Subject", "Elective/Language"]},
                "resource_type": {"type": "string", "enum": ["CT Paper", "Sem Paper", "Study Material"]},
                "file_urls": {"type": "string", "description": "Comma-delimited URLs"},
                "title": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "BrowseQuery": {
            "type": "object",
            "properties": {
                "year": {"type": "string"},
                "resource_type": {"type": "string"},
                "search": {"type": "string"}
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
