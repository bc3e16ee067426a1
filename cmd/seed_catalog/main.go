// seed_catalog genera un script SQL para poblar el catálogo maestro
// (proveedores, productos y ubicaciones) a partir de un CSV exportado del
// sistema anterior. Las cuentas no se siembran: se capturan desde la operación.
//
// Formato del CSV (cabecera obligatoria): set,value
// donde set es suppliers, products o locations.
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var seedSets = []string{"suppliers", "products", "locations"}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El export viene en ISO-8859-1; lo transcodificamos a UTF-8 al leer.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV vacío o sin filas de datos")
		os.Exit(1)
	}

	// Agrupar por conjunto preservando el orden de aparición del archivo,
	// deduplicando dentro de cada conjunto.
	values := make(map[string][]string)
	seen := make(map[string]map[string]bool)
	for _, set := range seedSets {
		seen[set] = make(map[string]bool)
	}
	skipped := 0
	for _, row := range records[1:] {
		if len(row) < 2 {
			skipped++
			continue
		}
		set := strings.ToLower(strings.TrimSpace(row[0]))
		value := strings.TrimSpace(row[1])
		if value == "" || seen[set] == nil {
			skipped++
			continue
		}
		if seen[set][value] {
			continue
		}
		seen[set][value] = true
		values[set] = append(values[set], value)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo maestro inicial (proveedores, productos, ubicaciones)\n")
	out.WriteString("-- Generado desde el CSV exportado del sistema anterior\n\n")

	total := 0
	for _, set := range seedSets {
		vals := values[set]
		if len(vals) == 0 {
			continue
		}
		fmt.Fprintf(out, "-- %s\n", set)
		out.WriteString("INSERT INTO catalog_values (set_name, value, position) VALUES\n")
		for i, v := range vals {
			sep := ","
			if i == len(vals)-1 {
				sep = ""
			}
			fmt.Fprintf(out, "  ('%s', '%s', %d)%s\n", set, escapeSQL(v), i+1, sep)
		}
		out.WriteString("ON CONFLICT (set_name, value) DO NOTHING;\n\n")
		total += len(vals)
	}

	fmt.Printf("Generado %s: %d valores (%d filas omitidas)\n", outPath, total, skipped)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
