package workflow

import (
	"testing"

	"casetrack-service/internal/domain/cases"
)

func completeAlta() cases.AltaPayload {
	return cases.AltaPayload{
		Name:                "Grupo Industrial Aguilar",
		Ramo:                "GMM",
		Subramo:             "Colectivo",
		GiroNegocio:         "Manufactura",
		TipoExperiencia:     "Nueva",
		Etapa:               cases.EtapaCreado,
		FechaInicioVigencia: "2026-01-01",
		PrimaObjetivo:       "1500000",
		ClaveAgente:         "AG-4401",
		NuevoConducto:       "No",
		Nearshoring:         "No",
		Observaciones:       "Prospecto referido por promotoría",
	}
}

func Test_validateAlta_Complete(t *testing.T) {
	p := completeAlta()
	if err := validateAlta(&p); err != nil {
		t.Fatalf("complete alta should pass, got %v", err)
	}
}

func Test_validateAlta_ReportsEveryMissingField(t *testing.T) {
	p := completeAlta()
	p.Ramo = ""
	p.PrimaObjetivo = ""
	p.Observaciones = ""

	err := validateAlta(&p)
	ve, ok := cases.AsValidation(err)
	if !ok {
		t.Fatalf("want ValidationError, got %v", err)
	}
	for _, f := range []string{"ramo", "primaObjetivo", "observaciones"} {
		if !ve.Has(f) {
			t.Fatalf("missing field %q not reported: %v", f, ve.Fields)
		}
	}
	if ve.Has("name") {
		t.Fatalf("present field reported as missing: %v", ve.Fields)
	}
}

func Test_normalizeAlta_ClearsForeignSubramo(t *testing.T) {
	p := completeAlta()
	p.Ramo = "Autos"
	p.Subramo = "Colectivo" // belongs to GMM, not Autos
	normalizeAlta(&p)
	if p.Subramo != "" {
		t.Fatalf("subramo should be cleared, got %q", p.Subramo)
	}

	p.Subramo = "Flotillas"
	normalizeAlta(&p)
	if p.Subramo != "Flotillas" {
		t.Fatalf("valid subramo should survive, got %q", p.Subramo)
	}
}

func Test_validateNegotiation_Base(t *testing.T) {
	p := cases.NegotiationPayload{
		PoblacionAsegurada: "240",
		Estatus:            cases.EstatusGanada,
		Observaciones:      "Cierre con descuento",
	}
	if err := validateNegotiation(&p); err != nil {
		t.Fatalf("valid negotiation should pass, got %v", err)
	}

	p.Estatus = "GANADO" // not in the catalog
	err := validateNegotiation(&p)
	ve, ok := cases.AsValidation(err)
	if !ok || !ve.Has("estatus") {
		t.Fatalf("unknown estatus should fail on estatus, got %v", err)
	}
}

func Test_validateNegotiation_LossFieldsBindOnlyWhenLost(t *testing.T) {
	lost := cases.NegotiationPayload{
		PoblacionAsegurada: "240",
		Estatus:            cases.EstatusPerdida,
		Observaciones:      "Perdimos contra la competencia",
	}
	err := validateNegotiation(&lost)
	ve, ok := cases.AsValidation(err)
	if !ok {
		t.Fatalf("lost without loss block should fail, got %v", err)
	}
	if !ve.Has("motivoNoGanado") || !ve.Has("aseguradoraGanadora") {
		t.Fatalf("loss fields not demanded: %v", ve.Fields)
	}

	lost.MotivoNoGanado = "Precio"
	lost.AseguradoraGanadora = "Zurich"
	if err := validateNegotiation(&lost); err != nil {
		t.Fatalf("lost with loss block should pass, got %v", err)
	}

	// Retained account: lost estatus but the client stayed, loss block not required.
	lost.MotivoNoGanado = ""
	lost.AseguradoraGanadora = ""
	lost.SeQuedo = true
	if err := validateNegotiation(&lost); err != nil {
		t.Fatalf("retained loss should pass without loss block, got %v", err)
	}
}

func Test_validateEmission_StrictAndRelaxed(t *testing.T) {
	p := cases.EmissionPayload{}

	err := validateEmission(&p, true)
	ve, ok := cases.AsValidation(err)
	if !ok || !ve.Has("observaciones") {
		t.Fatalf("strict emission without observaciones should fail, got %v", err)
	}

	if err := validateEmission(&p, false); err != nil {
		t.Fatalf("relaxed emission should pass, got %v", err)
	}

	p.Observaciones = "Emitida sin incidencias"
	if err := validateEmission(&p, true); err != nil {
		t.Fatalf("strict emission with observaciones should pass, got %v", err)
	}
}

func Test_validateStep_DispatchesOnPayloadType(t *testing.T) {
	alta := completeAlta()
	if err := validateStep(alta, true); err != nil {
		t.Fatalf("value alta: %v", err)
	}
	if err := validateStep(&alta, true); err != nil {
		t.Fatalf("pointer alta: %v", err)
	}

	neg := cases.NegotiationPayload{}
	if _, ok := cases.AsValidation(validateStep(neg, true)); !ok {
		t.Fatalf("empty negotiation should produce a validation error")
	}
}
