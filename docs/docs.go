// Package docs registers the OpenAPI description served at /swagger.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Welcome",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Creates an account and returns a session token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/poke_explorer.AuthRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/poke_explorer.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/poke_explorer.AuthRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/poke_explorer.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}}
                }
            }
        },
        "/api/pokemon": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Relays the PokéAPI list page. limit and offset are forwarded verbatim.",
                "produces": ["application/json"],
                "tags": ["pokemon"],
                "summary": "List Pokémon",
                "parameters": [
                    {"type": "string", "default": "20", "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "string", "default": "0", "description": "Offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}}
                }
            }
        },
        "/api/pokemon/{nameOrId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["pokemon"],
                "summary": "Pokémon details",
                "parameters": [
                    {"type": "string", "example": "pikachu", "description": "Name or national dex number", "name": "nameOrId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}}
                }
            }
        },
        "/api/search": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Records the term in the caller's history, then looks the Pokémon up.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search",
                "parameters": [
                    {"description": "Search term", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/poke_explorer.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}}
                }
            }
        },
        "/api/search/history": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "The caller's most recent searches, newest first.",
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search history",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/poke_explorer.HistoryEntry"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}}
                }
            }
        },
        "/api/search/live": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "WebSocket. Each frame {\"term\":\"...\"} runs a search; replies are {\"type\":\"result\",\"data\":...} or {\"type\":\"error\",\"status\":...,\"error\":...}.",
                "tags": ["search"],
                "summary": "Live search",
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/poke_explorer.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "poke_explorer.AuthRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string", "example": "pikachu1"},
                "username": {"type": "string", "example": "ash"}
            }
        },
        "poke_explorer.AuthResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "token": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "poke_explorer.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "poke_explorer.HistoryEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "term": {"type": "string"},
                "timestamp": {"type": "string"},
                "user": {"type": "string"}
            }
        },
        "poke_explorer.SearchRequest": {
            "type": "object",
            "properties": {
                "term": {"type": "string", "example": "charizard"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Poké-Explorer API",
	Description:      "Authenticated Pokémon search backed by PokéAPI, with per-user search history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
