package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FormOptions is the snapshot of selectable values served by the backend.
type FormOptions struct {
	Brands        OptionList `json:"brands"`
	Years         OptionList `json:"years"`
	Fuels         OptionList `json:"fuels"`
	Transmissions OptionList `json:"transmissions"`
	Locations     OptionList `json:"locations"`
	Subcategories OptionList `json:"subcategories"`
}

// OptionList decodes a JSON array of strings or numbers into its string form.
// The backend sends years as integers and everything else as strings.
type OptionList []string

func (l *OptionList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode option list: %w", err)
	}

	out := make(OptionList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var n json.Number
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("decode option %s: %w", string(item), err)
		}
		out = append(out, n.String())
	}
	*l = out
	return nil
}

// Field returns the options for one of the six form fields.
func (o *FormOptions) Field(name string) []string {
	if o == nil {
		return nil
	}
	switch name {
	case FieldBrand:
		return o.Brands
	case FieldYear:
		return o.Years
	case FieldFuel:
		return o.Fuels
	case FieldTransmission:
		return o.Transmissions
	case FieldLocation:
		return o.Locations
	case FieldSubcategory:
		return o.Subcategories
	}
	return nil
}
