package extractor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docextractor/internal/domain"
	"docextractor/internal/extractor"
)

const plainReply = `{"tipoDocumento":"RG","nome":"Maria Silva","cpf":"123.456.789-00","uf":null}`

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", plainReply, plainReply},
		{"surrounding whitespace", "\n\t " + plainReply + " \n", plainReply},
		{"fenced with tag", "```json\n" + plainReply + "\n```", plainReply},
		{"fenced without tag", "```\n" + plainReply + "\n```", plainReply},
		{"fence without closing", "```json\n" + plainReply, plainReply},
		{"leading whitespace before fence", "  \n```json\n" + plainReply + "\n```\n", plainReply},
		{"uppercase tag is kept", "```JSON\n{}\n```", "JSON\n{}"},
		{"prose before fence is untouched", "Here it is:\n```json\n{}\n```", "Here it is:\n```json\n{}\n```"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.StripCodeFence(tt.in))
		})
	}
}

func TestNormalize_Plain(t *testing.T) {
	data, err := extractor.Normalize(domain.ProviderClaude, plainReply)

	require.NoError(t, err)
	assert.Equal(t, "RG", data.TipoDocumento)
	require.NotNil(t, data.Nome)
	assert.Equal(t, "Maria Silva", *data.Nome)
	require.NotNil(t, data.CPF)
	assert.Equal(t, "123.456.789-00", *data.CPF)
	assert.Nil(t, data.UF)
	assert.Nil(t, data.Categoria)
}

func TestNormalize_FencedEqualsPlain(t *testing.T) {
	plain, err := extractor.Normalize(domain.ProviderGemini, plainReply)
	require.NoError(t, err)

	fenced, err := extractor.Normalize(domain.ProviderGemini, "```json\n"+plainReply+"\n```")
	require.NoError(t, err)

	assert.Equal(t, plain, fenced)
}

func TestNormalize_Failures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantMsg string
	}{
		{"prose", "I could not read this document, sorry.", "parsing reply as JSON"},
		{"empty", "", "empty reply"},
		{"prose before fence", "Sure!\n```json\n" + plainReply + "\n```", "parsing reply as JSON"},
		{"trailing data", plainReply + " extra", "unexpected data"},
		{"missing tipoDocumento", `{"nome":"Maria"}`, "document schema"},
		{"null tipoDocumento", `{"tipoDocumento":null}`, "document schema"},
		{"non-string field", `{"tipoDocumento":"RG","nome":42}`, "document schema"},
		{"unknown field", `{"tipoDocumento":"RG","foo":"bar"}`, "document schema"},
		{"array", `[{"tipoDocumento":"RG"}]`, "document schema"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := extractor.Normalize(domain.ProviderClaude, tt.raw)

			assert.Nil(t, data)
			require.Error(t, err)
			var extErr *extractor.ExtractionError
			require.True(t, errors.As(err, &extErr))
			assert.Equal(t, extractor.KindNormalization, extErr.Kind)
			assert.Equal(t, domain.ProviderClaude, extErr.Provider)
			assert.Contains(t, err.Error(), "invalid response from Claude API")
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDocumentSchema_ListsEveryField(t *testing.T) {
	schema := extractor.DocumentSchema()
	props := schema["properties"].(map[string]any)

	assert.Len(t, props, 23)
	assert.Contains(t, props, "tipoDocumento")
	assert.Contains(t, props, "primeiraHabilitacao")
	assert.Equal(t, false, schema["additionalProperties"])
	assert.Equal(t, []string{"tipoDocumento"}, schema["required"])
}
