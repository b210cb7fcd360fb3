// Package view отрисовывает записи хранилища в виде HTML-таблицы
// для клиентов, которые просят text/html вместо JSON.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

var tmpl = template.Must(template.ParseFS(files, "templates/*.html"))

// Row описывает запись, которую можно показать строкой таблицы.
type Row interface {
	Columns() []string
	Values() []string
}

type table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Table рендерит страницу с таблицей. columns задаются явно,
// чтобы пустой список тоже получил заголовок.
func Table(title string, columns []string, rows []Row) (string, error) {
	const op = "view.Table"

	data := table{
		Title:   title,
		Columns: columns,
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, row.Values())
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "table.html", data); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return buf.String(), nil
}
