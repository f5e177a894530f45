package item

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type scalarKind uint8

const (
	scalarAbsent scalarKind = iota
	scalarNumber
	scalarString
	scalarBool
)

// Scalar is a catalog value that may be written as a JSON number, string or
// boolean (level "5+", bulk "L", hands 2, range true). It remembers which
// form it had.
type Scalar struct {
	kind scalarKind
	num  float64
	str  string
	flag bool
}

// Number returns a numeric Scalar
func Number(v float64) Scalar {
	return Scalar{kind: scalarNumber, num: v}
}

// Text returns a string Scalar
func Text(v string) Scalar {
	return Scalar{kind: scalarString, str: v}
}

// Bool returns a boolean Scalar
func Bool(v bool) Scalar {
	return Scalar{kind: scalarBool, flag: v}
}

func (s Scalar) IsZero() bool {
	return s.kind == scalarAbsent
}

func (s Scalar) IsNumber() bool {
	return s.kind == scalarNumber
}

func (s Scalar) IsString() bool {
	return s.kind == scalarString
}

// Float returns the numeric value; zero unless IsNumber
func (s Scalar) Float() float64 {
	return s.num
}

// Raw returns the string value; empty unless IsString
func (s Scalar) Raw() string {
	return s.str
}

// Truthy mirrors the catalog's loose flag semantics: non-zero numbers and
// non-empty strings are set.
func (s Scalar) Truthy() bool {
	switch s.kind {
	case scalarNumber:
		return s.num != 0
	case scalarString:
		return s.str != ""
	case scalarBool:
		return s.flag
	}
	return false
}

// String renders the value the way it is shown in list cells
func (s Scalar) String() string {
	switch s.kind {
	case scalarNumber:
		return strconv.FormatFloat(s.num, 'f', -1, 64)
	case scalarString:
		return s.str
	case scalarBool:
		return strconv.FormatBool(s.flag)
	}
	return ""
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	*s = Scalar{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Text(str)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		num, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*s = Number(num)
	case 't', 'f':
		flag, err := strconv.ParseBool(string(data))
		if err != nil {
			return err
		}
		*s = Bool(flag)
	}
	// objects and arrays are treated as absent

	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case scalarNumber:
		return json.Marshal(s.num)
	case scalarString:
		return json.Marshal(s.str)
	case scalarBool:
		return json.Marshal(s.flag)
	}
	return []byte("null"), nil
}

// StringList is a catalog field written either as a single string or as an
// array of strings.
type StringList []string

// First returns the first value or an empty string
func (l StringList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Contains reports whether value is one of the list entries
func (l StringList) Contains(value string) bool {
	for _, v := range l {
		if v == value {
			return true
		}
	}
	return false
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*l = StringList{str}
	case '[':
		var arr []string
		if err := json.Unmarshal(data, &arr); err != nil {
			return err
		}
		*l = arr
	}

	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if len(l) == 1 {
		return json.Marshal(l[0])
	}
	return json.Marshal([]string(l))
}
