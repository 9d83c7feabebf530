// Package docs is generated by swaggo/swag from the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/cities/{id}/districts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Districts of a city",
                "parameters": [
                    {"type": "string", "description": "City ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/leases/lookup": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leases"],
                "summary": "Tenant autofill",
                "parameters": [
                    {"type": "string", "description": "Tenant name or email, at least 2 characters", "name": "tenant", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/leases/{id}/terminate": {
            "post": {
                "produces": ["application/json"],
                "tags": ["leases"],
                "summary": "Terminate lease",
                "parameters": [
                    {"type": "string", "description": "Lease ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/payments/{id}/pay": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Mark payment paid",
                "parameters": [
                    {"type": "string", "description": "Payment ID", "name": "id", "in": "path", "required": true},
                    {"description": "Settlement", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/stock/{id}/adjust": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stock"],
                "summary": "Adjust stock",
                "parameters": [
                    {"type": "string", "description": "Stock item ID", "name": "id", "in": "path", "required": true},
                    {"description": "Adjustment", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/service-requests/{id}/status": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["service-requests"],
                "summary": "Change request status",
                "parameters": [
                    {"type": "string", "description": "Request ID", "name": "id", "in": "path", "required": true},
                    {"description": "Next status", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/units/{id}/attachments": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["attachments"],
                "summary": "Upload attachment",
                "parameters": [
                    {"type": "string", "description": "Owning record ID", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "File", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/attachments/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["attachments"],
                "summary": "Get attachment",
                "parameters": [
                    {"type": "string", "description": "Attachment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get settings",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Update settings",
                "parameters": [
                    {"description": "Settings", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "propdesk API",
	Description:      "Property management back office: buildings, units, leases, payments, stock and service requests.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
