// Package fits reads the BINTABLE extension of a FITS file: header
// discovery of column layout (TFIELDS/TFORMn/TTYPEn/TUNITn) followed by
// fixed-width, big-endian cell decoding and name-addressed row access.
package fits

import (
	"fmt"
	"io"
	"reflect"

	stgpsr "github.com/yuin/stagparser"
)

// Column describes one BINTABLE field: its declared name and TFORM,
// plus its cumulative byte offset and width within a row.
type Column struct {
	Index  int
	Name   string
	Unit   string
	TForm  TForm
	Offset int
	Width  int
}

// Table is one opened BINTABLE HDU: its row layout and raw row bytes.
// Rows are fixed-width and column offsets are cumulative, per the FITS
// binary-table convention.
type Table struct {
	rowWidth int
	rows     int
	data     []byte
	columns  []Column
	byName   map[string]*Column
}

// OpenTable parses the BINTABLE HDU at the given 0-based HDU index (the
// primary HDU counts as index 0) out of r.
func OpenTable(r io.Reader, hduIndex int) (*Table, error) {
	if hduIndex < 0 {
		return nil, fmt.Errorf("%w: negative hdu index %d", ErrHduNotFound, hduIndex)
	}
	hdus, err := readHDUs(r, hduIndex)
	if err != nil {
		return nil, err
	}
	if hduIndex >= len(hdus) {
		return nil, fmt.Errorf("%w: index %d", ErrHduNotFound, hduIndex)
	}
	h := hdus[hduIndex]

	xtension, err := headerString(h.header, "XTENSION")
	if err != nil {
		return nil, err
	}
	if xtension != "BINTABLE" && xtension != "TABLE" {
		return nil, fmt.Errorf("%w: XTENSION is %q, not a table", ErrUnexpectedValueType, xtension)
	}

	rowWidth, err := headerInt(h.header, "NAXIS1")
	if err != nil {
		return nil, err
	}
	rows, err := headerInt(h.header, "NAXIS2")
	if err != nil {
		return nil, err
	}
	nfields, err := headerInt(h.header, "TFIELDS")
	if err != nil {
		return nil, err
	}

	columns := make([]Column, nfields)
	byName := make(map[string]*Column, nfields)
	offset := 0
	for i := 0; i < nfields; i++ {
		n := i + 1
		formRaw, err := headerString(h.header, fmt.Sprintf("TFORM%d", n))
		if err != nil {
			return nil, err
		}
		name, err := headerString(h.header, fmt.Sprintf("TTYPE%d", n))
		if err != nil {
			return nil, err
		}
		unit, _ := headerString(h.header, fmt.Sprintf("TUNIT%d", n))

		tform, err := ParseTForm(formRaw)
		if err != nil {
			return nil, err
		}
		width, err := tform.Width()
		if err != nil {
			return nil, err
		}

		columns[i] = Column{Index: i, Name: name, Unit: unit, TForm: tform, Offset: offset, Width: width}
		offset += width
	}
	for i := range columns {
		byName[columns[i].Name] = &columns[i]
	}

	if len(h.data) != rowWidth*rows {
		return nil, fmt.Errorf("%w: hdu %d has %d bytes, want %d", ErrNotByteData, hduIndex, len(h.data), rowWidth*rows)
	}

	return &Table{
		rowWidth: rowWidth,
		rows:     rows,
		data:     h.data,
		columns:  columns,
		byName:   byName,
	}, nil
}

// Rows reports the table's row count (NAXIS2).
func (t *Table) Rows() int { return t.rows }

// Columns returns the table's column schema, in declared order.
func (t *Table) Columns() []Column { return t.columns }

// Cell decodes the value of column name at the given 0-based row.
func (t *Table) Cell(row int, name string) (any, error) {
	col, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: column %q", ErrMissingHeaderKey, name)
	}
	if row < 0 || row >= t.rows {
		return nil, fmt.Errorf("%w: row %d out of range [0,%d)", ErrCellDecodeFailed, row, t.rows)
	}

	start := row*t.rowWidth + col.Offset
	raw := t.data[start : start+col.Width]

	v, err := decodeCell(col.TForm, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: column %q row %d: %v", ErrCellDecodeFailed, name, row, err)
	}
	return v, nil
}

// Scan performs whole-row deserialization: dest must be a pointer to a
// struct whose fields carry `fits:"col=NAME"` tags naming the source
// column. Fields without a fits tag are left untouched.
func (t *Table) Scan(row int, dest any) error {
	defs, err := stgpsr.ParseStruct(dest, "fits")
	if err != nil {
		return fmt.Errorf("fits: parsing struct tags: %w", err)
	}

	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("fits: Scan requires a pointer to struct, got %T", dest)
	}
	v = v.Elem()
	ty := v.Type()

	for i := 0; i < ty.NumField(); i++ {
		field := ty.Field(i)
		if !field.IsExported() {
			continue
		}

		columnName, ok := columnNameFor(defs[field.Name])
		if !ok {
			continue
		}

		value, err := t.Cell(row, columnName)
		if err != nil {
			return err
		}
		if err := assign(v.Field(i), value); err != nil {
			return fmt.Errorf("fits: field %s: %w", field.Name, err)
		}
	}
	return nil
}

func columnNameFor(defs []stgpsr.Definition) (string, bool) {
	for _, def := range defs {
		if name, ok := def.Attribute("col"); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

func assign(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.Bool:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("cannot assign %T to bool field", value)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := value.(int64)
		if !ok {
			return fmt.Errorf("cannot assign %T to integer field", value)
		}
		field.SetInt(i)
	case reflect.Float32, reflect.Float64:
		f, ok := value.(float64)
		if !ok {
			return fmt.Errorf("cannot assign %T to float field", value)
		}
		field.SetFloat(f)
	case reflect.String:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("cannot assign %T to string field", value)
		}
		field.SetString(s)
	case reflect.Interface:
		field.Set(reflect.ValueOf(value))
	default:
		return fmt.Errorf("unsupported destination field kind %s", field.Kind())
	}
	return nil
}
