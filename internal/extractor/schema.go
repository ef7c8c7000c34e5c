package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// optionalFields are the DocumentData properties that may be absent or null.
var optionalFields = []string{
	"nome", "cpf", "rg", "dataNascimento", "nomeDaMae", "nomeDoPai",
	"orgaoExpedidor", "dataExpedicao", "dataVencimento", "naturalidade", "uf",
	"nacionalidade", "estadoCivil", "endereco", "cep", "numeroDocumento",
	"categoria", "numeroRegistro", "validade", "primeiraHabilitacao",
	"observacoes", "outrosDados",
}

// DocumentSchema returns the JSON Schema a normalized reply must satisfy.
func DocumentSchema() map[string]any {
	props := map[string]any{
		"tipoDocumento": map[string]any{"type": "string"},
	}
	for _, f := range optionalFields {
		props[f] = map[string]any{"type": []string{"string", "null"}}
	}
	return map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"required":             []string{"tipoDocumento"},
		"properties":           props,
		"additionalProperties": false,
	}
}

var documentSchema = mustCompileSchema(DocumentSchema())

func mustCompileSchema(schemaMap map[string]any) *jsonschema.Schema {
	s, err := compileSchema(schemaMap)
	if err != nil {
		panic(err)
	}
	return s
}

func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("document.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("document.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
