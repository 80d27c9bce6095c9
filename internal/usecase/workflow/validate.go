package workflow

import (
	"casetrack-service/internal/domain/cases"
)

// Required-field tables per step. These gate advance/finish only; drafts may
// be as partial as the user left them.

var altaRequired = []struct {
	field string
	get   func(p *cases.AltaPayload) string
}{
	{"name", func(p *cases.AltaPayload) string { return p.Name }},
	{"ramo", func(p *cases.AltaPayload) string { return p.Ramo }},
	{"subramo", func(p *cases.AltaPayload) string { return p.Subramo }},
	{"giroNegocio", func(p *cases.AltaPayload) string { return p.GiroNegocio }},
	{"tipoExperiencia", func(p *cases.AltaPayload) string { return p.TipoExperiencia }},
	{"etapa", func(p *cases.AltaPayload) string { return p.Etapa }},
	{"fechaInicioVigencia", func(p *cases.AltaPayload) string { return p.FechaInicioVigencia }},
	{"primaObjetivo", func(p *cases.AltaPayload) string { return p.PrimaObjetivo }},
	{"claveAgente", func(p *cases.AltaPayload) string { return p.ClaveAgente }},
	{"nuevoConducto", func(p *cases.AltaPayload) string { return p.NuevoConducto }},
	{"nearshoring", func(p *cases.AltaPayload) string { return p.Nearshoring }},
	{"observaciones", func(p *cases.AltaPayload) string { return p.Observaciones }},
}

// normalizeAlta drops a subramo that no longer belongs to the chosen ramo,
// mirroring the capture screen clearing the sub-line when the line changes.
func normalizeAlta(p *cases.AltaPayload) {
	if p.Subramo != "" && !cases.ValidSubramo(p.Ramo, p.Subramo) {
		p.Subramo = ""
	}
}

func validateAlta(p *cases.AltaPayload) error {
	var missing []string
	for _, r := range altaRequired {
		if r.get(p) == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return cases.NewValidationError(missing...)
	}
	return nil
}

func validateNegotiation(p *cases.NegotiationPayload) error {
	var bad []string
	if p.PoblacionAsegurada == "" {
		bad = append(bad, "poblacionAsegurada")
	}
	if p.Estatus == "" || !cases.ValidNegotiationEstatus(p.Estatus) {
		bad = append(bad, "estatus")
	}
	if p.Observaciones == "" {
		bad = append(bad, "observaciones")
	}
	// Loss fields only bind when the account was lost and not retained.
	if p.Estatus == cases.EstatusPerdida && !p.SeQuedo {
		if p.MotivoNoGanado == "" {
			bad = append(bad, "motivoNoGanado")
		}
		if p.AseguradoraGanadora == "" {
			bad = append(bad, "aseguradoraGanadora")
		}
	}
	if len(bad) > 0 {
		return cases.NewValidationError(bad...)
	}
	return nil
}

func validateEmission(p *cases.EmissionPayload, strict bool) error {
	if strict && p.Observaciones == "" {
		return cases.NewValidationError("observaciones")
	}
	return nil
}

// normalizeStep applies the form-level normalization rules before the payload
// is validated or merged. For alta this clears a subramo that no longer
// belongs to the chosen ramo, so a stale subramo fails the required check on
// advance instead of slipping through and being cleared after validation.
func normalizeStep(p cases.StepPayload) cases.StepPayload {
	switch v := p.(type) {
	case cases.AltaPayload:
		normalizeAlta(&v)
		return v
	case *cases.AltaPayload:
		cp := *v
		normalizeAlta(&cp)
		return cp
	}
	return p
}

// validateStep gates a transition out of the payload's step.
func validateStep(p cases.StepPayload, strictEmission bool) error {
	switch v := p.(type) {
	case cases.AltaPayload:
		return validateAlta(&v)
	case *cases.AltaPayload:
		return validateAlta(v)
	case cases.NegotiationPayload:
		return validateNegotiation(&v)
	case *cases.NegotiationPayload:
		return validateNegotiation(v)
	case cases.EmissionPayload:
		return validateEmission(&v, strictEmission)
	case *cases.EmissionPayload:
		return validateEmission(v, strictEmission)
	default:
		return cases.ErrIllegalTransition
	}
}
