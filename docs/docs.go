// Package docs registers the Swagger document served under /swagger.
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
        "/auth/login": {
            "post": {
                "description": "Sign in as the catalog administrator",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/shoes": {
            "get": {
                "description": "Get a paginated list of shoe cards with their display variant",
                "produces": ["application/json"],
                "tags": ["Shoes"],
                "summary": "List shoe cards",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PaginationResponse"}}
                }
            }
        },
        "/shoes/{slug}": {
            "get": {
                "description": "Get the card of one shoe",
                "produces": ["application/json"],
                "tags": ["Shoes"],
                "summary": "Get shoe card",
                "parameters": [
                    {"type": "string", "description": "Shoe slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/shoes/{slug}/card": {
            "get": {
                "description": "Render the card of one shoe as an HTML fragment",
                "produces": ["text/html"],
                "tags": ["Shoes"],
                "summary": "Render shoe card",
                "parameters": [
                    {"type": "string", "description": "Shoe slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/catalog": {
            "get": {
                "description": "Render a page of shoe cards as HTML",
                "produces": ["text/html"],
                "tags": ["Shoes"],
                "summary": "Render catalog page",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/admin/shoes": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Add a shoe to the catalog (Admin)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Shoes"],
                "summary": "Create shoe",
                "parameters": [
                    {"description": "Shoe", "name": "shoe", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateShoeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/shoes/{slug}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Partially update a shoe; clear_sale_price ends a sale (Admin)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Shoes"],
                "summary": "Update shoe",
                "parameters": [
                    {"type": "string", "description": "Shoe slug", "name": "slug", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "shoe", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateShoeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Remove a shoe from the catalog (Admin)",
                "produces": ["application/json"],
                "tags": ["Admin - Shoes"],
                "summary": "Delete shoe",
                "parameters": [
                    {"type": "string", "description": "Shoe slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/shoes/{slug}/image": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Upload the card image of a shoe (Admin)",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Admin - Shoes"],
                "summary": "Upload shoe image",
                "parameters": [
                    {"type": "string", "description": "Shoe slug", "name": "slug", "in": "path", "required": true},
                    {"type": "file", "description": "Shoe image", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.CreateShoeRequest": {
            "type": "object",
            "required": ["slug", "name", "price", "release_date", "num_of_colors"],
            "properties": {
                "slug": {"type": "string"},
                "name": {"type": "string"},
                "image_src": {"type": "string"},
                "price": {"type": "integer", "minimum": 0},
                "sale_price": {"type": "integer", "minimum": 0},
                "release_date": {"type": "string", "example": "2024-05-01"},
                "num_of_colors": {"type": "integer", "minimum": 1}
            }
        },
        "models.UpdateShoeRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "image_src": {"type": "string"},
                "price": {"type": "integer", "minimum": 0},
                "sale_price": {"type": "integer", "minimum": 0},
                "clear_sale_price": {"type": "boolean"},
                "release_date": {"type": "string"},
                "num_of_colors": {"type": "integer", "minimum": 1}
            }
        },
        "models.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "models.MetaData": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "models.PaginationResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "meta": {"$ref": "#/definitions/models.MetaData"}
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
	Title:            "Shoe Store API",
	Description:      "Shoe catalog cards: sale and new release badges, prices and color counts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
