package encoding

import "testing"

type profile struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestMarshalRoundtrip(t *testing.T) {
	ba, err := Marshal(profile{Name: "John", Age: 40})
	if err != nil {
		t.Fatalf("Marshal() failed, got = %v, want = nil", err)
	}
	var p profile
	if err := Unmarshal(ba, &p); err != nil {
		t.Fatalf("Unmarshal() failed, got = %v, want = nil", err)
	}
	if p.Name != "John" || p.Age != 40 {
		t.Errorf("roundtrip failed, got = %+v, want = {John 40}", p)
	}
}

func TestByteArrayPassthrough(t *testing.T) {
	in := []byte{0x1, 0x2, 0x3}
	ba, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() failed, got = %v, want = nil", err)
	}
	if string(ba) != string(in) {
		t.Errorf("Marshal() passthrough failed, got = %v, want = %v", ba, in)
	}

	var out []byte
	if err := Unmarshal(ba, &out); err != nil {
		t.Fatalf("Unmarshal() failed, got = %v, want = nil", err)
	}
	if string(out) != string(in) {
		t.Errorf("Unmarshal() passthrough failed, got = %v, want = %v", out, in)
	}
}
