package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// leerCSV reads the uploaded "file" form field into header-keyed rows.
// Column names are matched case-insensitively so exports from spreadsheets
// round-trip without fuss.
func leerCSV(c *gin.Context) ([]map[string]string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, errors.New("no CSV file uploaded")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, errors.New("empty CSV file")
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows []map[string]string
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("line %d: %w", line, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// escribirCSV streams a CSV download built from a header row plus records.
func escribirCSV(c *gin.Context, filename string, header []string, records [][]string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(header)
	for _, rec := range records {
		_ = w.Write(rec)
	}
	w.Flush()
}

func respuestaImport(c *gin.Context, imported int, rowErrors []string) {
	msg := fmt.Sprintf("Importación completada: %d registros", imported)
	c.JSON(http.StatusOK, gin.H{
		"message":  msg,
		"imported": imported,
		"errors":   rowErrors,
	})
}
