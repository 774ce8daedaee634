// Package docs registers the OpenAPI specification served at /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Bearer token authentication. Prefix the token with \"Bearer \"."
        }
    },
    "paths": {
        "/users": {
            "post": {
                "tags": ["users"],
                "summary": "Register a user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/CreateUserRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Email or username already exists", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "tags": ["users"],
                "summary": "Log in",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Incorrect email or password", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "tags": ["users"],
                "summary": "Get the current user",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["users"],
                "summary": "Get a user by id",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/exercises": {
            "get": {
                "tags": ["exercises"],
                "summary": "List exercises",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "search", "in": "query", "type": "string", "description": "Name or alias substring"},
                    {"name": "muscle_group", "in": "query", "type": "string", "description": "Muscle group name"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Exercise"}}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/exercises/{id}": {
            "get": {
                "tags": ["exercises"],
                "summary": "Get an exercise by id",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Exercise"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Exercise not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/trainings": {
            "get": {
                "tags": ["trainings"],
                "summary": "List trainings",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Training"}}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["trainings"],
                "summary": "Create a training",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "name": "training",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/TrainingRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Training"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/trainings/{id}": {
            "get": {
                "tags": ["trainings"],
                "summary": "Get a training by id",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Training"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Training not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["trainings"],
                "summary": "Update a training",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {
                        "name": "training",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/TrainingRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Training"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Training not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["trainings"],
                "summary": "Delete a training",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Training not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "CreateUserRequest": {
            "type": "object",
            "required": ["email", "username", "password"],
            "properties": {
                "email": {"type": "string"},
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string", "description": "Username or email"},
                "password": {"type": "string"}
            }
        },
        "UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string", "example": "bearer"}
            }
        },
        "Exercise": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "aliases": {"type": "array", "items": {"type": "string"}},
                "muscle_group": {"$ref": "#/definitions/MuscleGroup"}
            }
        },
        "MuscleGroup": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "Training": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "date": {"type": "string", "format": "date-time"},
                "exercises": {"type": "array", "items": {"$ref": "#/definitions/TrainingExercise"}}
            }
        },
        "TrainingExercise": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "training_id": {"type": "integer"},
                "exercise_id": {"type": "integer"},
                "sets": {"type": "integer"},
                "reps": {"type": "integer"},
                "weight": {"type": "number"},
                "exercise": {"$ref": "#/definitions/Exercise"}
            }
        },
        "TrainingRequest": {
            "type": "object",
            "required": ["date"],
            "properties": {
                "date": {"type": "string", "format": "date-time"},
                "exercises": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "required": ["exercise_id", "sets", "reps", "weight"],
                        "properties": {
                            "exercise_id": {"type": "integer"},
                            "sets": {"type": "integer", "minimum": 1},
                            "reps": {"type": "integer", "minimum": 1},
                            "weight": {"type": "number", "exclusiveMinimum": 0}
                        }
                    }
                }
            }
        },
        "MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "training.not_found"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Fit-Track API",
	Description:      "REST API for user accounts, an exercise catalog, and per-user training logs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
