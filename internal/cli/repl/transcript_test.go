package repl

import "testing"

func TestNewTranscript(t *testing.T) {
	tr := NewTranscript(1000)
	if tr == nil {
		t.Fatal("NewTranscript returned nil")
	}
	if tr.maxSize != 1000 {
		t.Errorf("maxSize = %d, want %d", tr.maxSize, 1000)
	}
	if tr.entries == nil {
		t.Error("entries should be initialized")
	}
	if NewTranscript(-3).maxSize != 0 {
		t.Error("negative size should disable the transcript")
	}
}

func TestTranscript_Add_MaxSize(t *testing.T) {
	tr := NewTranscript(3)

	tr.Add(Entry{Line: "1"})
	tr.Add(Entry{Line: "2"})
	tr.Add(Entry{Line: "3"})
	tr.Add(Entry{Line: "4"}) // evicts "1"

	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tr.Len())
	}
	if tr.entries[0].Line != "2" {
		t.Errorf("entries[0] = %q, want %q", tr.entries[0].Line, "2")
	}
	if tr.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", tr.Dropped())
	}
}

func TestTranscript_Disabled(t *testing.T) {
	tr := NewTranscript(0)
	tr.Add(Entry{Line: "1"})
	tr.Add(Entry{Line: "2"})

	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
	if tr.Dropped() != 2 {
		t.Errorf("Dropped() = %d, want 2", tr.Dropped())
	}
}

func TestTranscript_Get(t *testing.T) {
	tr := NewTranscript(10)
	tr.Add(Entry{Line: "first"})
	tr.Add(Entry{Line: "second"})
	tr.Add(Entry{Line: "third"})

	tests := []struct {
		index  int
		want   string
		wantOK bool
	}{
		{0, "third", true},
		{1, "second", true},
		{2, "first", true},
		{3, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := tr.Get(tt.index)
		if ok != tt.wantOK || got.Line != tt.want {
			t.Errorf("Get(%d) = (%q, %v), want (%q, %v)", tt.index, got.Line, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTranscript_EntriesIsCopy(t *testing.T) {
	tr := NewTranscript(10)
	tr.Add(Entry{Line: "1"})

	entries := tr.Entries()
	entries[0].Line = "changed"

	if got, _ := tr.Get(0); got.Line != "1" {
		t.Error("Entries() should return a copy")
	}
}
