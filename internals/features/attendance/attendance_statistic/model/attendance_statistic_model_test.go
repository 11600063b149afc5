package model

import "testing"

func TestComputePercentage(t *testing.T) {
	tests := []struct {
		name    string
		present int
		excused int
		late    int
		total   int
		want    float64
	}{
		{name: "sin registros", present: 0, excused: 0, late: 0, total: 0, want: 0.00},
		{name: "todo presente", present: 10, excused: 0, late: 0, total: 10, want: 100.00},
		{name: "justificado y tarde cuentan como asistencia", present: 6, excused: 2, late: 1, total: 10, want: 90.00},
		{name: "solo ausencias descuentan", present: 7, excused: 0, late: 0, total: 10, want: 70.00},
		{name: "redondeo a dos decimales", present: 1, excused: 0, late: 0, total: 3, want: 33.33},
		{name: "redondeo hacia arriba", present: 2, excused: 0, late: 0, total: 3, want: 66.67},
		{name: "sin_registrar solo infla el total", present: 4, excused: 0, late: 0, total: 8, want: 50.00},
		{name: "total negativo se trata como vacío", present: 1, excused: 0, late: 0, total: -1, want: 0.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePercentage(tt.present, tt.excused, tt.late, tt.total)
			if got != tt.want {
				t.Errorf("ComputePercentage(%d,%d,%d,%d) = %.2f, want %.2f",
					tt.present, tt.excused, tt.late, tt.total, got, tt.want)
			}
		})
	}
}

func TestComputePercentageIdempotente(t *testing.T) {
	first := ComputePercentage(5, 1, 2, 11)
	second := ComputePercentage(5, 1, 2, 11)
	if first != second {
		t.Errorf("recomputar con los mismos datos cambió el resultado: %.2f vs %.2f", first, second)
	}
}

func TestRiskTierFor(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		want       RiskTier
	}{
		{name: "100 es bajo", percentage: 100.00, want: RiskTierBajo},
		{name: "90 exacto es bajo (límite inclusivo)", percentage: 90.00, want: RiskTierBajo},
		{name: "89.99 es medio", percentage: 89.99, want: RiskTierMedio},
		{name: "80 exacto es medio", percentage: 80.00, want: RiskTierMedio},
		{name: "79.99 es alto", percentage: 79.99, want: RiskTierAlto},
		{name: "70 exacto es alto", percentage: 70.00, want: RiskTierAlto},
		{name: "69.99 es crítico", percentage: 69.99, want: RiskTierCritico},
		{name: "0 es crítico", percentage: 0.00, want: RiskTierCritico},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RiskTierFor(tt.percentage); got != tt.want {
				t.Errorf("RiskTierFor(%.2f) = %s, want %s", tt.percentage, got, tt.want)
			}
		})
	}
}

func TestRiskTierDeEstadistica(t *testing.T) {
	stat := AttendanceStatisticModel{AttendanceStatisticsPercentage: 75.50}
	if got := stat.RiskTier(); got != RiskTierAlto {
		t.Errorf("RiskTier() = %s, want %s", got, RiskTierAlto)
	}
}
