// Package swagger registers the OpenAPI document served at /swagger/doc.json.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ProductResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates a product, optionally with stash items",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Create product",
                "parameters": [
                    {"description": "Product creation request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/products/expiring": {
            "get": {
                "description": "At least one of after and before is required. after is inclusive, before is exclusive.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List expiring products",
                "parameters": [
                    {"type": "string", "description": "Inclusive lower bound (YYYY-MM-DD)", "name": "after", "in": "query"},
                    {"type": "string", "description": "Exclusive upper bound (YYYY-MM-DD)", "name": "before", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ProductResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/products/by_stash_item_id/{stashItemID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by stash item",
                "parameters": [
                    {"type": "string", "description": "Stash item ID (UUID)", "name": "stashItemID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ProductResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/products/{productID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "productID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ProductResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Update product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "productID", "in": "path", "required": true},
                    {"description": "Product update request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["products"],
                "summary": "Delete product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "productID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/products/{productID}/stash_items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stash_items"],
                "summary": "List stash items",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "productID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StashItemResponse"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stash_items"],
                "summary": "Add stash item",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "productID", "in": "path", "required": true},
                    {"description": "Stash item", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StashItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/StashItemResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/products/{productID}/stash_items/{stashItemID}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stash_items"],
                "summary": "Update stash item",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "productID", "in": "path", "required": true},
                    {"type": "string", "description": "Stash item ID (UUID)", "name": "stashItemID", "in": "path", "required": true},
                    {"description": "Stash item update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStashItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StashItemResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["stash_items"],
                "summary": "Remove stash item",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "productID", "in": "path", "required": true},
                    {"type": "string", "description": "Stash item ID (UUID)", "name": "stashItemID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "CreateProductRequest": {
            "type": "object",
            "required": ["brand", "id"],
            "properties": {
                "brand": {"type": "string", "maxLength": 255, "example": "Acme"},
                "id": {"type": "string", "maxLength": 255, "example": "4006381333931"},
                "name": {"type": "string", "maxLength": 255, "example": "Peanut butter"},
                "stash_items": {"type": "array", "items": {"$ref": "#/definitions/StashItemRequest"}}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "product not found"}
            }
        },
        "ProductResponse": {
            "type": "object",
            "properties": {
                "brand": {"type": "string", "example": "Acme"},
                "id": {"type": "string", "example": "4006381333931"},
                "name": {"type": "string", "example": "Peanut butter"},
                "stash_items": {"type": "array", "items": {"$ref": "#/definitions/StashItemResponse"}}
            }
        },
        "StashItemRequest": {
            "type": "object",
            "required": ["expiry_date", "quantity"],
            "properties": {
                "expiry_date": {"type": "string", "example": "2024-01-01"},
                "id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "quantity": {"type": "integer", "minimum": 1, "example": 2}
            }
        },
        "StashItemResponse": {
            "type": "object",
            "properties": {
                "expiry_date": {"type": "string", "example": "2024-01-01"},
                "id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "quantity": {"type": "integer", "example": 2}
            }
        },
        "UpdateProductRequest": {
            "type": "object",
            "required": ["brand"],
            "properties": {
                "brand": {"type": "string", "maxLength": 255, "example": "Acme"},
                "id": {"type": "string", "maxLength": 255, "example": "4006381333931"},
                "name": {"type": "string", "maxLength": 255, "example": "Peanut butter"}
            }
        },
        "UpdateStashItemRequest": {
            "type": "object",
            "required": ["expiry_date", "quantity"],
            "properties": {
                "expiry_date": {"type": "string", "example": "2024-02-01"},
                "quantity": {"type": "integer", "minimum": 1, "example": 3}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Pantry API",
	Description:      "Tracks products and the dated stash items kept of each.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
