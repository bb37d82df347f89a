// Package swagger holds the generated API documentation served at /swagger.
package swagger

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
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign up",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/stock": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stock"],
                "summary": "List stock",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["stock"],
                "summary": "Add stock item",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Insufficient remaining budget"}}
            }
        },
        "/api/stock/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["stock"],
                "summary": "Update stock item",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Insufficient remaining budget"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["stock"],
                "summary": "Delete stock item",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/budget": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["budget"],
                "summary": "Get budget",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["budget"],
                "summary": "Set total budget",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Budget below spent"}}
            }
        },
        "/api/requests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["requests"],
                "summary": "List requests",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["requests"],
                "summary": "Create request",
                "responses": {"201": {"description": "Created"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["requests"],
                "summary": "Clear requests",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/requests/{id}/approve": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["requests"],
                "summary": "Approve request",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Unresolvable item or insufficient stock"}}
            }
        },
        "/api/requests/{id}/reject": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["requests"],
                "summary": "Reject request",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/notifications": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["notifications"],
                "summary": "List notifications",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["notifications"],
                "summary": "Clear notifications",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["summary"],
                "summary": "Dashboard summary",
                "responses": {"200": {"description": "OK"}}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Campus Stock & Budget API",
	Description:      "Stock requests, approvals and budget tracking for an institution.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
