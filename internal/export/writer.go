package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"docextractor/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

type column struct {
	header string
	value  func(d *domain.DocumentData) *string
}

// columns defines the export header row and how each cell is read.
var columns = []column{
	{"Tipo de Documento", func(d *domain.DocumentData) *string { return &d.TipoDocumento }},
	{"Nome", func(d *domain.DocumentData) *string { return d.Nome }},
	{"CPF", func(d *domain.DocumentData) *string { return d.CPF }},
	{"RG", func(d *domain.DocumentData) *string { return d.RG }},
	{"Data de Nascimento", func(d *domain.DocumentData) *string { return d.DataNascimento }},
	{"Nome da Mãe", func(d *domain.DocumentData) *string { return d.NomeDaMae }},
	{"Nome do Pai", func(d *domain.DocumentData) *string { return d.NomeDoPai }},
	{"Órgão Expedidor", func(d *domain.DocumentData) *string { return d.OrgaoExpedidor }},
	{"Data de Expedição", func(d *domain.DocumentData) *string { return d.DataExpedicao }},
	{"Data de Vencimento", func(d *domain.DocumentData) *string { return d.DataVencimento }},
	{"Naturalidade", func(d *domain.DocumentData) *string { return d.Naturalidade }},
	{"UF", func(d *domain.DocumentData) *string { return d.UF }},
	{"Nacionalidade", func(d *domain.DocumentData) *string { return d.Nacionalidade }},
	{"Estado Civil", func(d *domain.DocumentData) *string { return d.EstadoCivil }},
	{"Endereço", func(d *domain.DocumentData) *string { return d.Endereco }},
	{"CEP", func(d *domain.DocumentData) *string { return d.CEP }},
	{"Número do Documento", func(d *domain.DocumentData) *string { return d.NumeroDocumento }},
	{"Categoria", func(d *domain.DocumentData) *string { return d.Categoria }},
	{"Número de Registro", func(d *domain.DocumentData) *string { return d.NumeroRegistro }},
	{"Validade", func(d *domain.DocumentData) *string { return d.Validade }},
	{"Primeira Habilitação", func(d *domain.DocumentData) *string { return d.PrimeiraHabilitacao }},
	{"Observações", func(d *domain.DocumentData) *string { return d.Observacoes }},
	{"Outros Dados", func(d *domain.DocumentData) *string { return d.OutrosDados }},
}

// Headers returns the header row shared by every export format.
func Headers() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.header
	}
	return out
}

// documentToRow converts a document to one cell per column. Null fields become "".
func documentToRow(doc *domain.DocumentData) []string {
	row := make([]string, len(columns))
	for i, c := range columns {
		if v := c.value(doc); v != nil {
			row[i] = *v
		}
	}
	return row
}

// Writer wraps csv.Writer for exporting documents as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(Headers())
}

// WriteDocuments converts a batch of documents to CSV rows and writes them.
func (w *Writer) WriteDocuments(docs []domain.DocumentData) error {
	for i := range docs {
		if err := w.csv.Write(documentToRow(&docs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes the BOM, header and one row per document to out.
func WriteCSV(out io.Writer, docs []domain.DocumentData) error {
	if _, err := out.Write(BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteDocuments(docs); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	w.Flush()
	return w.Error()
}
