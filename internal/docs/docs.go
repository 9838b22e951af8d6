// Package docs registra el documento OpenAPI que sirve /swagger/*.
// Regenerar con: swag init -g cmd/api/main.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BasicAuth": {"type": "basic"},
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BasicAuth": []}, {"BearerAuth": []}],
    "paths": {
        "/signup": {
            "post": {
                "tags": ["accounts"],
                "summary": "Crear cuenta",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/signupRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/user"}},
                    "400": {"description": "invalid input"},
                    "409": {"description": "username already taken"}
                }
            }
        },
        "/cats": {
            "get": {
                "tags": ["cats"],
                "summary": "Listar mis gatos",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/cat"}}},
                    "401": {"description": "unauthorized"}
                }
            },
            "post": {
                "tags": ["cats"],
                "summary": "Crear gato",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/createCatRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/cat"}},
                    "400": {"description": "invalid input"},
                    "401": {"description": "unauthorized"}
                }
            }
        },
        "/cats/{catID}": {
            "parameters": [{"in": "path", "name": "catID", "type": "string", "required": true}],
            "get": {
                "tags": ["cats"],
                "summary": "Detalle del gato (feedings, fotos, juguetes)",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catDetail"}},
                    "403": {"description": "forbidden"},
                    "404": {"description": "cat not found"}
                }
            },
            "patch": {
                "tags": ["cats"],
                "summary": "Actualizar breed/description/age (name es inmutable)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/updateCatRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cat"}},
                    "400": {"description": "invalid input"},
                    "403": {"description": "forbidden"},
                    "404": {"description": "cat not found"}
                }
            },
            "delete": {
                "tags": ["cats"],
                "summary": "Borrar gato",
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "forbidden"},
                    "404": {"description": "cat not found"}
                }
            }
        },
        "/cats/{catID}/feedings": {
            "parameters": [{"in": "path", "name": "catID", "type": "string", "required": true}],
            "get": {
                "tags": ["cats"],
                "summary": "Listar feedings (fecha desc)",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/feeding"}}}}
            },
            "post": {
                "tags": ["cats"],
                "summary": "Registrar feeding",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/feedingRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/feeding"}},
                    "400": {"description": "invalid date or meal"}
                }
            }
        },
        "/cats/{catID}/toys/{toyID}": {
            "parameters": [
                {"in": "path", "name": "catID", "type": "string", "required": true},
                {"in": "path", "name": "toyID", "type": "string", "required": true}
            ],
            "put": {
                "tags": ["cats"],
                "summary": "Asociar juguete (idempotente)",
                "responses": {"204": {"description": "No Content"}, "403": {"description": "toy belongs to another user"}, "404": {"description": "not found"}}
            },
            "delete": {
                "tags": ["cats"],
                "summary": "Desasociar juguete (idempotente)",
                "responses": {"204": {"description": "No Content"}, "404": {"description": "not found"}}
            }
        },
        "/cats/{catID}/photos": {
            "parameters": [{"in": "path", "name": "catID", "type": "string", "required": true}],
            "get": {
                "tags": ["cats"],
                "summary": "Listar fotos",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/photo"}}}}
            },
            "post": {
                "tags": ["cats"],
                "summary": "Subir foto",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [{"in": "formData", "name": "photo-file", "type": "file", "required": false}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/photo"}},
                    "204": {"description": "sin archivo (no-op)"},
                    "413": {"description": "file too large"},
                    "502": {"description": "photo upload failed"}
                }
            }
        },
        "/toys": {
            "get": {
                "tags": ["toys"],
                "summary": "Listar mis juguetes",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/toy"}}}}
            },
            "post": {
                "tags": ["toys"],
                "summary": "Crear juguete",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/toyRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/toy"}}, "400": {"description": "invalid input"}}
            }
        },
        "/toys/{toyID}": {
            "parameters": [{"in": "path", "name": "toyID", "type": "string", "required": true}],
            "get": {
                "tags": ["toys"],
                "summary": "Detalle del juguete",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/toy"}}, "403": {"description": "forbidden"}, "404": {"description": "toy not found"}}
            },
            "patch": {
                "tags": ["toys"],
                "summary": "Actualizar juguete",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/toyRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/toy"}}}
            },
            "delete": {
                "tags": ["toys"],
                "summary": "Borrar juguete",
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "signupRequest": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "user": {"type": "object", "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "created_at": {"type": "string"}}},
        "createCatRequest": {"type": "object", "properties": {"name": {"type": "string"}, "breed": {"type": "string"}, "description": {"type": "string"}, "age": {"type": "integer"}}},
        "updateCatRequest": {"type": "object", "properties": {"breed": {"type": "string"}, "description": {"type": "string"}, "age": {"type": "integer"}}},
        "cat": {"type": "object", "properties": {"id": {"type": "string"}, "owner_user_id": {"type": "string"}, "name": {"type": "string"}, "breed": {"type": "string"}, "description": {"type": "string"}, "age": {"type": "integer"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "catDetail": {"type": "object", "allOf": [{"$ref": "#/definitions/cat"}], "properties": {
            "feedings": {"type": "array", "items": {"$ref": "#/definitions/feeding"}},
            "photos": {"type": "array", "items": {"$ref": "#/definitions/photo"}},
            "toys": {"type": "array", "items": {"$ref": "#/definitions/toy"}},
            "available_toys": {"type": "array", "items": {"$ref": "#/definitions/toy"}},
            "fed_for_today": {"type": "boolean"}
        }},
        "feedingRequest": {"type": "object", "properties": {"date": {"type": "string", "example": "2024-05-01"}, "meal": {"type": "string", "enum": ["breakfast", "lunch", "dinner"]}}},
        "feeding": {"type": "object", "properties": {"id": {"type": "string"}, "cat_id": {"type": "string"}, "date": {"type": "string"}, "meal": {"type": "string"}}},
        "photo": {"type": "object", "properties": {"id": {"type": "string"}, "cat_id": {"type": "string"}, "url": {"type": "string"}}},
        "toyRequest": {"type": "object", "properties": {"name": {"type": "string"}, "color": {"type": "string"}}},
        "toy": {"type": "object", "properties": {"id": {"type": "string"}, "owner_user_id": {"type": "string"}, "name": {"type": "string"}, "color": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cat Collector API",
	Description:      "Gatos, feedings, juguetes y fotos por usuario.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
