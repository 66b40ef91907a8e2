// Package doclib generates the OpenAPI 3.1 schema for the API from the route
// definitions registered through uapi.
package doclib

import (
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type SetupData struct {
	URL             string
	ErrorStruct     any
	Info            Info
	errorStructName string
}

var (
	DocsSetupData *SetupData
	stringType    = openapi3.Types([]string{"string"})
)

var api = Openapi{
	OpenAPI: "3.1.0",
	Servers: []Server{
		{
			Description: "Charlie Chat App API",
			Variables:   map[string]any{},
		},
	},
	Components: Component{
		Schemas:       make(map[string]any),
		Security:      make(map[string]Security),
		RequestBodies: make(map[string]ReqBody),
	},
}

var badRequestSchema *openapi3.SchemaRef

var IdSchema *openapi3.SchemaRef
var BoolSchema *openapi3.SchemaRef

func Setup() {
	if DocsSetupData == nil {
		panic("DocsSetupData is nil")
	}

	var err error

	badRequestSchema, err = openapi3gen.NewSchemaRefForValue(DocsSetupData.ErrorStruct, nil, SchemaInject(DocsSetupData.ErrorStruct))

	if err != nil {
		panic(err)
	}

	errorSchemaName := reflect.TypeOf(DocsSetupData.ErrorStruct).String()
	errorSchemaName = strings.ReplaceAll(errorSchemaName, "docs.", "")

	DocsSetupData.errorStructName = errorSchemaName

	IdSchema, err = openapi3gen.NewSchemaRefForValue("1234567890", nil)

	if err != nil {
		panic(err)
	}

	BoolSchema, err = openapi3gen.NewSchemaRefForValue(true, nil)

	if err != nil {
		panic(err)
	}

	api.Components.Schemas[DocsSetupData.errorStructName] = badRequestSchema

	api.Info = DocsSetupData.Info
	api.Servers[0].URL = DocsSetupData.URL
	api.Paths = orderedmap.New[string, Path]()
}

func AddTag(name, description string) {
	api.Tags = append(api.Tags, Tag{
		Name:        name,
		Description: description,
	})
}

func AddSecuritySchema(id, header, description string) {
	api.Components.Security[id] = Security{
		Type:        "apiKey",
		Name:        header,
		In:          "header",
		Description: description,
	}
}

// SchemaInject customizes generated schemas based on struct tags
// (description, enum, validate) and well-known field types.
func SchemaInject(s any) openapi3gen.Option {
	return openapi3gen.SchemaCustomizer(func(name string, ft reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
		if tag.Get("description") != "" {
			schema.Description = tag.Get("description")
		}

		if tag.Get("enum") != "" {
			enumVals := strings.Split(tag.Get("enum"), ",")

			schema.Enum = []any{}

			for _, val := range enumVals {
				schema.Enum = append(schema.Enum, val)
			}
		}

		if tag.Get("validate") != "" {
			validateVals := strings.Split(tag.Get("validate"), ",")

			for _, val := range validateVals {
				key := strings.Split(val, "=")[0]
				switch key {
				case "required":
					schema.Nullable = false
				case "oneof":
					enumVals := strings.Split(val, "=")[1]

					var enum []any

					for _, val := range strings.Split(enumVals, " ") {
						enum = append(enum, val)
					}

					schema.Enum = enum
				}
			}
		}

		switch ft.Name() {
		case "UUID":
			schema.Type = &stringType
			schema.Format = "uuid"
		case "Time":
			schema.Type = &stringType
			schema.Format = "date-time"
		}

		if tag.Get("type") != "" {
			typ := openapi3.Types([]string{tag.Get("type")})
			schema.Type = &typ
		}

		return nil
	})
}

// Route registers one operation in the schema.
func Route(doc *Doc) {
	if len(doc.Params) == 0 {
		doc.Params = []Parameter{}
	}

	if len(doc.AuthType) == 0 {
		doc.AuthType = []string{}
	}

	if len(doc.Tags) == 0 {
		panic("no tags set in route: " + doc.Pattern)
	}

	for _, param := range doc.Params {
		if param.In == "" {
			panic("no in set in route: " + doc.Pattern)
		}

		if param.Name == "" {
			panic("no name set in route: " + doc.Pattern)
		}

		if param.Schema == nil {
			panic("no schema set in route: " + doc.Pattern)
		}

		if param.Description == "" {
			panic("no description set in route: " + doc.Pattern)
		}
	}

	if doc.OpId == "" {
		panic("no opId set in route: " + doc.Pattern)
	}

	if doc.Pattern == "" {
		panic("no path set in route: " + doc.OpId)
	}

	var schemaName string

	if doc.Resp == nil {
		doc.Resp = DocsSetupData.ErrorStruct
	}

	if doc.RespName != "" {
		schemaName = doc.RespName
	} else {
		schemaName = reflect.TypeOf(doc.Resp).String()
		schemaName = strings.ReplaceAll(schemaName, "docs.", "")
	}

	if schemaName != DocsSetupData.errorStructName {
		if _, ok := api.Components.Schemas[schemaName]; !ok {
			schemaRef, err := openapi3gen.NewSchemaRefForValue(doc.Resp, nil, SchemaInject(doc.Resp))

			if err != nil {
				panic(err)
			}

			api.Components.Schemas[schemaName] = schemaRef
		}
	}

	var reqBodyRef *Schema
	if doc.Req != nil {
		schemaRef, err := openapi3gen.NewSchemaRefForValue(doc.Req, nil, SchemaInject(doc.Req))

		if err != nil {
			panic(err)
		}

		reqSchemaName := reflect.TypeOf(doc.Req).String()

		api.Components.RequestBodies[doc.Method+"_"+reqSchemaName] = ReqBody{
			Required: true,
			Content: map[string]Content{
				"application/json": {
					Schema: schemaRef,
				},
			},
		}

		if _, ok := api.Paths.Get(doc.Pattern); !ok {
			api.Paths.Set(doc.Pattern, Path{})
		}

		reqBodyRef = &Schema{Ref: "#/components/requestBodies/" + doc.Method + "_" + reqSchemaName}
	}

	operationData := &Operation{
		Tags:        doc.Tags,
		Summary:     doc.Summary,
		Description: doc.Description,
		ID:          doc.OpId,
		Parameters:  doc.Params,
		Responses: map[string]Response{
			"200": {
				Description: "Success",
				Content: map[string]SchemaResp{
					"application/json": {
						Schema: Schema{
							Ref: "#/components/schemas/" + schemaName,
						},
					},
				},
			},
			"400": {
				Description: "Bad Request",
				Content: map[string]SchemaResp{
					"application/json": {
						Schema: Schema{
							Ref: "#/components/schemas/" + DocsSetupData.errorStructName,
						},
					},
				},
			},
		},
	}

	if reqBodyRef != nil {
		operationData.RequestBody = reqBodyRef
	}

	operationData.Security = []map[string][]string{}

	for _, auth := range doc.AuthType {
		operationData.Security = append(operationData.Security, map[string][]string{
			auth: {},
		})
	}

	op, _ := api.Paths.Get(doc.Pattern)

	switch strings.ToLower(doc.Method) {
	case "head":
		op.Head = operationData
	case "get":
		op.Get = operationData
	case "post":
		op.Post = operationData
	case "put":
		op.Put = operationData
	case "patch":
		op.Patch = operationData
	case "delete":
		op.Delete = operationData
	default:
		panic("unknown method: " + doc.Method)
	}

	api.Paths.Set(doc.Pattern, op)
}

func GetSchema() Openapi {
	return api
}
