package turma

import (
	"testing"
	"time"

	"github.com/gtpim/turmas/core"
)

func TestParseData(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "valid", value: "31/12/2025", want: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "valid padded", value: "01/02/2025", want: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{name: "iso date", value: "2025-12-31", wantErr: true},
		{name: "dashes", value: "31-12-2025", wantErr: true},
		{name: "month day year", value: "12/31/2025", wantErr: true},
		{name: "garbage", value: "amanhã", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseData("data", tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseData() error = nil, want malformed-input error")
				}
				if _, ok := err.(*core.ValidationError); !ok {
					t.Errorf("ParseData() error = %T, want *core.ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseData() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseData() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMakeRegistro(t *testing.T) {
	got := MakeRegistro("Engenharia", "POO", "P001")
	want := "Engenharia-POO-P001"
	if got != want {
		t.Errorf("MakeRegistro() = %q, want %q", got, want)
	}

	// same inputs, same key
	if again := MakeRegistro("Engenharia", "POO", "P001"); again != got {
		t.Errorf("MakeRegistro() not deterministic: %q != %q", again, got)
	}
}

func TestTurma_VagasRestantes(t *testing.T) {
	turma := Turma{Vagas: 2}
	if got := turma.VagasRestantes(); got != 2 {
		t.Errorf("VagasRestantes() = %d, want 2", got)
	}
	turma.Alunos = append(turma.Alunos, "A001", "A002")
	if got := turma.VagasRestantes(); got != 0 {
		t.Errorf("VagasRestantes() = %d, want 0", got)
	}
}
