// Package docs holds the OpenAPI document served at /swagger/doc.json.
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
		"/auth/signup": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register or re-request a confirmation code",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.SignupResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"429": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.SignupRequest"
						}
					}
				]
			}
		},
		"/auth/token": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Exchange a confirmation code for a JWT",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.TokenResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"429": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.TokenRequest"
						}
					}
				]
			}
		},
		"/users": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "List users",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"type": "object",
									"properties": {
										"count": {
											"type": "integer"
										},
										"next": {
											"type": "string",
											"x-nullable": true
										},
										"previous": {
											"type": "string",
											"x-nullable": true
										},
										"results": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/response.UserResponse"
											}
										}
									}
								}
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "search",
						"in": "query",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"users"
				],
				"summary": "Create a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.UserResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CreateUserRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/me": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Current user profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.UserResponse"
								}
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"users"
				],
				"summary": "Update own profile (role is ignored)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.UserResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.UpdateUserRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{username}": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Get a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.UserResponse"
								}
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "username",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"users"
				],
				"summary": "Update a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.UserResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "username",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.UpdateUserRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"users"
				],
				"summary": "Delete a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "username",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/categories": {
			"get": {
				"tags": [
					"categories"
				],
				"summary": "List categories",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"type": "object",
									"properties": {
										"count": {
											"type": "integer"
										},
										"next": {
											"type": "string",
											"x-nullable": true
										},
										"previous": {
											"type": "string",
											"x-nullable": true
										},
										"results": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/response.SlugResponse"
											}
										}
									}
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "search",
						"in": "query",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"type": "integer"
					}
				]
			},
			"post": {
				"tags": [
					"categories"
				],
				"summary": "Create",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.SlugResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CategoryRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/categories/{slug}": {
			"delete": {
				"tags": [
					"categories"
				],
				"summary": "Delete by slug",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "slug",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/genres": {
			"get": {
				"tags": [
					"genres"
				],
				"summary": "List genres",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"type": "object",
									"properties": {
										"count": {
											"type": "integer"
										},
										"next": {
											"type": "string",
											"x-nullable": true
										},
										"previous": {
											"type": "string",
											"x-nullable": true
										},
										"results": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/response.SlugResponse"
											}
										}
									}
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "search",
						"in": "query",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"type": "integer"
					}
				]
			},
			"post": {
				"tags": [
					"genres"
				],
				"summary": "Create",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.SlugResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.GenreRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/genres/{slug}": {
			"delete": {
				"tags": [
					"genres"
				],
				"summary": "Delete by slug",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "slug",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/titles": {
			"get": {
				"tags": [
					"titles"
				],
				"summary": "List titles",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"type": "object",
									"properties": {
										"count": {
											"type": "integer"
										},
										"next": {
											"type": "string",
											"x-nullable": true
										},
										"previous": {
											"type": "string",
											"x-nullable": true
										},
										"results": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/response.TitleResponse"
											}
										}
									}
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "category",
						"in": "query",
						"type": "string",
						"description": "Category slug contains"
					},
					{
						"name": "genre",
						"in": "query",
						"type": "string",
						"description": "Genre slug contains"
					},
					{
						"name": "name",
						"in": "query",
						"type": "string"
					},
					{
						"name": "year",
						"in": "query",
						"type": "integer"
					},
					{
						"name": "page",
						"in": "query",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"type": "integer"
					}
				]
			},
			"post": {
				"tags": [
					"titles"
				],
				"summary": "Create a title",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.TitleResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CreateTitleRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/titles/{title_id}": {
			"get": {
				"tags": [
					"titles"
				],
				"summary": "Get a title",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.TitleResponse"
								}
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				]
			},
			"patch": {
				"tags": [
					"titles"
				],
				"summary": "Update a title",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.TitleResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.UpdateTitleRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"titles"
				],
				"summary": "Delete a title",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/titles/{title_id}/reviews": {
			"get": {
				"tags": [
					"reviews"
				],
				"summary": "List reviews of a title",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"type": "object",
									"properties": {
										"count": {
											"type": "integer"
										},
										"next": {
											"type": "string",
											"x-nullable": true
										},
										"previous": {
											"type": "string",
											"x-nullable": true
										},
										"results": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/response.ReviewResponse"
											}
										}
									}
								}
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "page",
						"in": "query",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"type": "integer"
					}
				]
			},
			"post": {
				"tags": [
					"reviews"
				],
				"summary": "Review a title",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.ReviewResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CreateReviewRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/titles/{title_id}/reviews/{review_id}": {
			"get": {
				"tags": [
					"reviews"
				],
				"summary": "Get a review",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.ReviewResponse"
								}
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "review_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				]
			},
			"patch": {
				"tags": [
					"reviews"
				],
				"summary": "Update a review (author, moderator or admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.ReviewResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "review_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.UpdateReviewRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"reviews"
				],
				"summary": "Delete a review (author, moderator or admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "review_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/titles/{title_id}/reviews/{review_id}/comments": {
			"get": {
				"tags": [
					"comments"
				],
				"summary": "List comments of a review",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"type": "object",
									"properties": {
										"count": {
											"type": "integer"
										},
										"next": {
											"type": "string",
											"x-nullable": true
										},
										"previous": {
											"type": "string",
											"x-nullable": true
										},
										"results": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/response.CommentResponse"
											}
										}
									}
								}
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "review_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "page",
						"in": "query",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"type": "integer"
					}
				]
			},
			"post": {
				"tags": [
					"comments"
				],
				"summary": "Comment on a review",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.CommentResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "review_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CommentRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/titles/{title_id}/reviews/{review_id}/comments/{comment_id}": {
			"get": {
				"tags": [
					"comments"
				],
				"summary": "Get a comment",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.CommentResponse"
								}
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "review_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "comment_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				]
			},
			"patch": {
				"tags": [
					"comments"
				],
				"summary": "Update a comment (author, moderator or admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"status": {
									"type": "boolean"
								},
								"message": {
									"type": "string"
								},
								"errors": {
									"type": "object",
									"additionalProperties": {
										"type": "string"
									}
								},
								"data": {
									"$ref": "#/definitions/response.CommentResponse"
								}
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "review_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "comment_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CommentRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"comments"
				],
				"summary": "Delete a comment (author, moderator or admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "title_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "review_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "comment_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"utils.Response": {
			"type": "object",
			"properties": {
				"status": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {},
				"errors": {}
			}
		},
		"request.SignupRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"maxLength": 254
				},
				"username": {
					"type": "string",
					"maxLength": 150,
					"pattern": "^[\\w.@+-]+$"
				}
			},
			"required": [
				"email",
				"username"
			]
		},
		"request.TokenRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"confirmation_code": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"confirmation_code"
			]
		},
		"request.CreateUserRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string",
					"maxLength": 150
				},
				"email": {
					"type": "string",
					"maxLength": 254
				},
				"first_name": {
					"type": "string",
					"maxLength": 150
				},
				"last_name": {
					"type": "string",
					"maxLength": 150
				},
				"bio": {
					"type": "string"
				},
				"role": {
					"type": "string",
					"enum": [
						"user",
						"moderator",
						"admin"
					]
				}
			},
			"required": [
				"username",
				"email"
			]
		},
		"request.UpdateUserRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string",
					"maxLength": 150
				},
				"email": {
					"type": "string",
					"maxLength": 254
				},
				"first_name": {
					"type": "string",
					"maxLength": 150
				},
				"last_name": {
					"type": "string",
					"maxLength": 150
				},
				"bio": {
					"type": "string"
				},
				"role": {
					"type": "string",
					"enum": [
						"user",
						"moderator",
						"admin"
					]
				}
			}
		},
		"request.CategoryRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 256
				},
				"slug": {
					"type": "string",
					"maxLength": 50,
					"pattern": "^[-a-zA-Z0-9_]+$"
				}
			},
			"required": [
				"name",
				"slug"
			]
		},
		"request.GenreRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 256
				},
				"slug": {
					"type": "string",
					"maxLength": 50,
					"pattern": "^[-a-zA-Z0-9_]+$"
				}
			},
			"required": [
				"name",
				"slug"
			]
		},
		"request.CreateTitleRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 256
				},
				"year": {
					"type": "integer"
				},
				"description": {
					"type": "string"
				},
				"genre": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"category": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"year",
				"genre",
				"category"
			]
		},
		"request.UpdateTitleRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 256
				},
				"year": {
					"type": "integer"
				},
				"description": {
					"type": "string"
				},
				"genre": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"category": {
					"type": "string"
				}
			}
		},
		"request.CreateReviewRequest": {
			"type": "object",
			"properties": {
				"text": {
					"type": "string"
				},
				"score": {
					"type": "integer",
					"minimum": 1,
					"maximum": 10
				}
			},
			"required": [
				"text",
				"score"
			]
		},
		"request.UpdateReviewRequest": {
			"type": "object",
			"properties": {
				"text": {
					"type": "string"
				},
				"score": {
					"type": "integer",
					"minimum": 1,
					"maximum": 10
				}
			}
		},
		"request.CommentRequest": {
			"type": "object",
			"properties": {
				"text": {
					"type": "string"
				}
			},
			"required": [
				"text"
			]
		},
		"response.SignupResponse": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"username": {
					"type": "string"
				}
			}
		},
		"response.TokenResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				}
			}
		},
		"response.UserResponse": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"first_name": {
					"type": "string"
				},
				"last_name": {
					"type": "string"
				},
				"bio": {
					"type": "string"
				},
				"role": {
					"type": "string",
					"enum": [
						"user",
						"moderator",
						"admin"
					]
				}
			}
		},
		"response.SlugResponse": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"slug": {
					"type": "string"
				}
			}
		},
		"response.TitleResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"year": {
					"type": "integer"
				},
				"rating": {
					"type": "number",
					"x-nullable": true
				},
				"description": {
					"type": "string"
				},
				"genre": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/response.SlugResponse"
					}
				},
				"category": {
					"x-nullable": true,
					"allOf": [
						{
							"$ref": "#/definitions/response.SlugResponse"
						}
					]
				}
			}
		},
		"response.ReviewResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"text": {
					"type": "string"
				},
				"author": {
					"type": "string"
				},
				"score": {
					"type": "integer"
				},
				"pub_date": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"response.CommentResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"text": {
					"type": "string"
				},
				"author": {
					"type": "string"
				},
				"pub_date": {
					"type": "string",
					"format": "date-time"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header",
			"description": "Bearer <JWT>"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "YaMDb API",
	Description:      "Reviews of titles (films, books, music): users, categories, genres, titles, reviews and comments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
