package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// APIVersion is reported by the health and info endpoints.
const APIVersion = "1.0.0"

// ExtractionRequest is the inbound body of POST /api/extract/.
type ExtractionRequest struct {
	Provider    Provider `json:"provider" binding:"required,oneof=claude gemini" example:"claude"`
	APIKey      string   `json:"api_key" binding:"required,min=10" example:"sk-ant-api03-..."`
	FileContent string   `json:"file_content" binding:"required,min=10" example:"/9j/4AAQSkZJRgABAQ..."`
	FileType    string   `json:"file_type" binding:"required" example:"image/jpeg"`
	FileName    string   `json:"file_name" binding:"required" example:"rg_frente.jpg"`
}

// Validate runs the checks that struct tags cannot express: the provider-specific
// API key prefix and base64 well-formedness of the payload.
func (r *ExtractionRequest) Validate() error {
	if !r.Provider.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, r.Provider)
	}
	prefix := APIKeyPrefixes[r.Provider]
	if !strings.HasPrefix(r.APIKey, prefix) {
		return fmt.Errorf("%w: %s keys must start with %s", ErrInvalidAPIKey, r.Provider.DisplayName(), prefix)
	}
	if _, err := base64.StdEncoding.DecodeString(r.FileContent); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return nil
}

// EstimatedSize approximates the decoded payload size from the base64 length.
func (r *ExtractionRequest) EstimatedSize() float64 {
	return float64(len(r.FileContent)) * 0.75
}

// DocumentData holds the fields extracted from an identification document.
// Only TipoDocumento is required; every other field is null when absent.
type DocumentData struct {
	TipoDocumento string `json:"tipoDocumento" binding:"required" example:"RG"`

	Nome            *string `json:"nome" example:"Maria Silva"`
	CPF             *string `json:"cpf" example:"123.456.789-00"`
	RG              *string `json:"rg"`
	DataNascimento  *string `json:"dataNascimento" example:"01/02/1990"`
	NomeDaMae       *string `json:"nomeDaMae"`
	NomeDoPai       *string `json:"nomeDoPai"`
	OrgaoExpedidor  *string `json:"orgaoExpedidor"`
	DataExpedicao   *string `json:"dataExpedicao"`
	DataVencimento  *string `json:"dataVencimento"`
	Naturalidade    *string `json:"naturalidade"`
	UF              *string `json:"uf"`
	Nacionalidade   *string `json:"nacionalidade"`
	EstadoCivil     *string `json:"estadoCivil"`
	Endereco        *string `json:"endereco"`
	CEP             *string `json:"cep"`
	NumeroDocumento *string `json:"numeroDocumento"`

	// Driver's license (CNH) fields.
	Categoria           *string `json:"categoria"`
	NumeroRegistro      *string `json:"numeroRegistro"`
	Validade            *string `json:"validade"`
	PrimeiraHabilitacao *string `json:"primeiraHabilitacao"`

	Observacoes *string `json:"observacoes"`
	OutrosDados *string `json:"outrosDados"`
}

// ExtractionResponse is the uniform envelope returned for every extraction attempt
// that passed boundary validation.
type ExtractionResponse struct {
	Success        bool          `json:"success"`
	Data           *DocumentData `json:"data"`
	Error          *string       `json:"error"`
	Provider       string        `json:"provider"`
	ProcessingTime float64       `json:"processing_time"`
	Timestamp      time.Time     `json:"timestamp"`
}

// NewSuccessResponse builds a success envelope.
func NewSuccessResponse(provider Provider, data *DocumentData, elapsed time.Duration) *ExtractionResponse {
	return &ExtractionResponse{
		Success:        true,
		Data:           data,
		Provider:       string(provider),
		ProcessingTime: RoundSeconds(elapsed),
		Timestamp:      time.Now(),
	}
}

// NewFailureResponse builds a failure envelope carrying msg.
func NewFailureResponse(provider Provider, msg string, elapsed time.Duration) *ExtractionResponse {
	return &ExtractionResponse{
		Success:        false,
		Error:          &msg,
		Provider:       string(provider),
		ProcessingTime: RoundSeconds(elapsed),
		Timestamp:      time.Now(),
	}
}

// RoundSeconds converts d to seconds rounded to two decimal places.
func RoundSeconds(d time.Duration) float64 {
	if d < 0 {
		d = 0
	}
	return float64(d.Round(10*time.Millisecond).Milliseconds()) / 1000
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status      string    `json:"status" example:"healthy"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version" example:"1.0.0"`
	Environment string    `json:"environment" example:"development"`
}

// NewHealthResponse builds a healthy status for the given environment.
func NewHealthResponse(environment string) HealthResponse {
	return HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now(),
		Version:     APIVersion,
		Environment: environment,
	}
}
