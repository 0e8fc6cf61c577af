// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/server/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/vibesearch"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Returns status ok and the number of songs in the loaded corpus",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/api.HealthResponse"}
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/api.LiveResponse"}
                    }
                }
            }
        },
        "/songs": {
            "get": {
                "description": "Returns all song names in stored order",
                "produces": ["application/json"],
                "tags": ["Songs"],
                "summary": "List songs",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/api.SongsResponse"}
                    }
                }
            }
        },
        "/recommend": {
            "get": {
                "description": "Same as POST /recommend with parameters taken from the query string",
                "produces": ["application/json"],
                "tags": ["Recommend"],
                "summary": "Recommend similar songs (query string)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Song name or substring",
                        "name": "song",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Number of recommendations (default 5)",
                        "name": "top_k",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/api.RecommendResponse"}
                    },
                    "400": {
                        "description": "Missing song or non-integer top_k",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    }
                }
            },
            "post": {
                "description": "Resolves the song by case-insensitive exact match, then substring match, and returns the top_k most similar other songs. A song that matches nothing returns matched null and an error message with status 200.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommend"],
                "summary": "Recommend similar songs",
                "parameters": [
                    {
                        "description": "Song query and optional top_k (default 5)",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.RecommendRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/api.RecommendResponse"}
                    },
                    "400": {
                        "description": "Malformed body or missing song",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    },
                    "413": {
                        "description": "Body too large",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    },
                    "415": {
                        "description": "Content-Type is not application/json",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "data": {},
                "metadata": {"$ref": "#/definitions/api.Metadata"},
                "error": {"$ref": "#/definitions/api.APIError"}
            }
        },
        "api.Metadata": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "api.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "songs_loaded": {"type": "integer", "example": 1200}
            }
        },
        "api.LiveResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"}
            }
        },
        "api.SongsResponse": {
            "type": "object",
            "properties": {
                "songs": {"type": "array", "items": {"type": "string"}}
            }
        },
        "api.RecommendRequest": {
            "type": "object",
            "required": ["song"],
            "properties": {
                "song": {"type": "string"},
                "top_k": {"type": "integer"}
            }
        },
        "api.Recommendation": {
            "type": "object",
            "properties": {
                "song": {"type": "string", "example": "Square a Saw - Echoes"},
                "similarity": {"type": "number", "example": 0.93}
            }
        },
        "api.RecommendResponse": {
            "type": "object",
            "properties": {
                "matched": {"type": "string", "x-nullable": true},
                "recommendations": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/api.Recommendation"}
                },
                "error": {"type": "string", "x-nullable": true}
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
	Title:            "Vibesearch API",
	Description:      "Song recommendations by cosine similarity over precomputed audio embeddings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
