package dictionary

import "testing"

// cafeLatin1 is "CAFÉ  K AH0 F EY1\n" encoded as ISO-8859-1/Windows-1252
// (they agree on this byte range), the shape of a legacy-codepage
// wordlist LoadBlobWithEncoding exists to transcode.
var cafeLatin1 = []byte{
	0x43, 0x41, 0x46, 0xc9, 0x20, 0x20, 0x4b, 0x20, 0x41, 0x48, 0x30, 0x20,
	0x46, 0x20, 0x45, 0x59, 0x31, 0x0a,
}

func TestLoadBlobWithEncodingISO8859_1(t *testing.T) {
	rep := NewRepresentation()
	if err := LoadBlobWithEncoding(cafeLatin1, ISO8859_1, MergeModeAppend, rep); err != nil {
		t.Fatalf("LoadBlobWithEncoding error: %v", err)
	}
	prons := rep.Entries["CAFÉ"]
	if len(prons) != 1 || prons[0] != "K AH0 F EY1" {
		t.Fatalf("prons = %v, want [K AH0 F EY1]", prons)
	}
}

func TestToUTF8FromUTF8RoundTrip(t *testing.T) {
	want := "café"
	blob, err := FromUTF8(want, ISO8859_1)
	if err != nil {
		t.Fatalf("FromUTF8 error: %v", err)
	}
	got, err := ToUTF8(blob, ISO8859_1)
	if err != nil {
		t.Fatalf("ToUTF8 error: %v", err)
	}
	if got != want {
		t.Fatalf("round-tripped = %q, want %q", got, want)
	}
}

func TestParseEncodingNames(t *testing.T) {
	cases := map[string]EncodingID{
		"utf-8":        UTF8,
		"iso-8859-1":   ISO8859_1,
		"windows-1252": Windows1252,
	}
	for name, want := range cases {
		got, err := ParseEncoding(name)
		if err != nil {
			t.Fatalf("ParseEncoding(%q) error: %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseEncoding(%q) = %v, want %v", name, got, want)
		}
	}
}
