// Package docs registra en swag la descripción OpenAPI del servicio de usuarios.
// El template sigue el formato que genera swag init.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Urban University",
            "url": "https://urban-university.ru/#consult",
            "email": "help@it-university.pro"
        },
        "license": {
            "name": "Apache 2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "tags": [
        {"name": "users", "description": "Operations with users."},
        {"name": "pets", "description": "operations with pets"}
    ],
    "paths": {
        "/": {
            "get": {
                "description": "Devuelve todos los usuarios en orden de inserción.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Lista de usuarios",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/users.User"}}}
                }
            }
        },
        "/pets": {
            "get": {
                "description": "La mascota de cada usuario, en el mismo orden que GET /.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Lista de mascotas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/users.Pet"}}}
                }
            }
        },
        "/available_pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Tipos de animal disponibles",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/users.AnimalKind"}}}
                }
            }
        },
        "/create": {
            "post": {
                "description": "Agrega el usuario al final de la lista. No se chequean nombres duplicados.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Crear usuario",
                "parameters": [
                    {"description": "Usuario", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.User"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.User"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/users.ValidationErrorResponse"}}
                }
            }
        },
        "/update/{name}": {
            "put": {
                "description": "Reemplaza completo el primer usuario con ese nombre. El nombre nuevo puede ser distinto.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Modificar usuario",
                "parameters": [
                    {"type": "string", "description": "Nombre del usuario a modificar", "name": "name", "in": "path", "required": true},
                    {"description": "Usuario", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.User"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/users.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/users.ValidationErrorResponse"}}
                }
            }
        },
        "/delete/{name}": {
            "delete": {
                "description": "Quita el primer usuario con ese nombre y lo devuelve.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Eliminar usuario",
                "parameters": [
                    {"type": "string", "description": "Nombre del usuario a eliminar", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.User"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/users.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "users.AnimalKind": {
            "type": "string",
            "enum": ["кот", "пёс", "рыбка", "попугай", "хомяк", "морская свинья", "обычная свинья"]
        },
        "users.Pet": {
            "type": "object",
            "required": ["type", "name"],
            "properties": {
                "type": {"title": "Тип животного", "description": "Доступные типы животных", "$ref": "#/definitions/users.AnimalKind"},
                "name": {"title": "кличка животного", "type": "string"}
            }
        },
        "users.User": {
            "type": "object",
            "required": ["name", "rating", "luck", "pet"],
            "properties": {
                "name": {"title": "имя пользователя", "type": "string"},
                "rating": {"title": "рейтинг пользователя", "type": "integer"},
                "luck": {"title": "удача пользователя", "type": "integer"},
                "pet": {"$ref": "#/definitions/users.Pet"}
            }
        },
        "users.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "users.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "array", "items": {"$ref": "#/definitions/validation.Detail"}}
            }
        },
        "validation.Detail": {
            "type": "object",
            "properties": {
                "loc": {"type": "array", "items": {"type": "string"}},
                "msg": {"type": "string"},
                "type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.0.1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "UrbanPeople API",
	Description:      "UrbanPeople API helps you to work with the list of people in CPU memory.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
