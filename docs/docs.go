// Package docs registers OpenAPI document of the API, it is served by swagger UI on /swagger/index.html
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{.Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "API status",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/cases": {
            "get": {
                "description": "Returns page of cases, newest first, optionally filtered and searched",
                "produces": ["application/json"],
                "tags": ["cases"],
                "summary": "List cases",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Full-text search", "name": "search", "in": "query"},
                    {"type": "string", "description": "Business name", "name": "businessName", "in": "query"},
                    {"type": "string", "description": "Department", "name": "department", "in": "query"},
                    {"type": "string", "description": "COID", "name": "coid", "in": "query"},
                    {"type": "string", "description": "MID", "name": "mid", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            },
            "post": {
                "description": "Creates new case, every missing required field is reported",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cases"],
                "summary": "New case",
                "parameters": [
                    {"description": "Data for new case", "name": "newCase", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.newCase"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            }
        },
        "/api/cases/custom-fields": {
            "get": {
                "description": "Returns all custom field definitions",
                "produces": ["application/json"],
                "tags": ["custom-fields"],
                "summary": "List custom fields",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            },
            "post": {
                "description": "Creates custom field definition",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["custom-fields"],
                "summary": "New custom field",
                "parameters": [
                    {"description": "Custom field definition", "name": "newCustomField", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.newCustomField"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            }
        },
        "/api/cases/custom-fields/{id}": {
            "delete": {
                "description": "Deletes custom field definition, values stored on cases are kept",
                "tags": ["custom-fields"],
                "summary": "Delete custom field by id",
                "parameters": [
                    {"type": "string", "description": "Custom field store id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Successful status code"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            }
        },
        "/api/cases/{id}": {
            "get": {
                "description": "Returns single case with provided id",
                "produces": ["application/json"],
                "tags": ["cases"],
                "summary": "Get single case by id",
                "parameters": [
                    {"type": "string", "description": "Case id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            },
            "put": {
                "description": "Replaces provided fields of existing case and returns updated case",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cases"],
                "summary": "Update case",
                "parameters": [
                    {"type": "string", "description": "Case id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to replace", "name": "updateCase", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.updateCase"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            },
            "delete": {
                "description": "Deletes case with provided id",
                "tags": ["cases"],
                "summary": "Delete case by id",
                "parameters": [
                    {"type": "string", "description": "Case id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Successful status code"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["success", "fail", "error"]},
                "data": {},
                "message": {"type": "string"}
            }
        },
        "handlers.newCase": {
            "type": "object",
            "properties": {
                "caseNumber": {"type": "string"},
                "subject": {"type": "string"},
                "description": {"type": "string"},
                "department": {"type": "string"},
                "status": {"type": "string", "enum": ["open", "closed"]},
                "contactName": {"type": "string"},
                "businessName": {"type": "string"},
                "coid": {"type": "string"},
                "mid": {"type": "string"},
                "customFields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handlers.updateCase": {
            "type": "object",
            "properties": {
                "caseNumber": {"type": "string"},
                "subject": {"type": "string"},
                "description": {"type": "string"},
                "department": {"type": "string"},
                "status": {"type": "string", "enum": ["open", "closed"]},
                "contactName": {"type": "string"},
                "businessName": {"type": "string"},
                "coid": {"type": "string"},
                "mid": {"type": "string"},
                "customFields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handlers.newCustomField": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "label": {"type": "string"},
                "type": {"type": "string", "enum": ["text", "textarea"]},
                "required": {"type": "boolean"}
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
	Title:            "Cases API",
	Description:      "Case tracking REST API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
