package descriptor

import "testing"

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bool", "Z"},
		{"boolean", "Z"},
		{"int8", "B"},
		{"uint8", "C"},
		{"char", "C"},
		{"int", "I"},
		{"int32", "I"},
		{"long", "J"},
		{"float64", "D"},
		{"void", "V"},
		{"[]int32", "[I"},
		{"[][]byte", "[[B"},
		{"java/lang/String", "Ljava/lang/String;"},
		{"java.lang.Object", "Ljava/lang/Object;"},
		{"[]java/lang/String", "[Ljava/lang/String;"},
		{" int64 ", "J"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			typ, err := ParseType(tt.in)
			if err != nil {
				t.Fatalf("ParseType(%q) error: %v", tt.in, err)
			}
			if got := typ.String(); got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseType_Invalid(t *testing.T) {
	for _, in := range []string{"", "intx", "[]", "Str"} {
		if _, err := ParseType(in); err == nil {
			t.Errorf("ParseType(%q) should fail", in)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"()", "()V"},
		{"()void", "()V"},
		{"(int32,int64)bool", "(IJ)Z"},
		{"( int , long ) double", "(IJ)D"},
		{"([]byte)int", "([B)I"},
		{"(java/lang/String)void", "(Ljava/lang/String;)V"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			sig, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got := sig.String(); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "int", "(int", "(what)int"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}
