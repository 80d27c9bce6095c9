package cases

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StepPayload tags a form section with the step it belongs to. SaveStep
// dispatches on the tag instead of a string-keyed map of fields.
type StepPayload interface {
	Step() Step
	// Observations returns the free-text field every section carries.
	Observations() string
}

// AltaPayload is the account-creation form: general data, agent block
// (read-only columns resolved from the directory), product/underwriting
// block, observations. Field names follow the capture screens.
type AltaPayload struct {
	Name                string `json:"name"`
	Ramo                string `json:"ramo"`
	Subramo             string `json:"subramo"`
	GiroNegocio         string `json:"giroNegocio"`
	TipoExperiencia     string `json:"tipoExperiencia"`
	Etapa               string `json:"etapa"`
	FechaInicioVigencia string `json:"fechaInicioVigencia" validate:"ymd"`
	PrimaObjetivo       string `json:"primaObjetivo"`
	CuidadoIntegral     string `json:"cuidadoIntegral"`

	ClaveAgente  string `json:"claveAgente"`
	NombreAgente string `json:"nombreAgente"`
	Promotor     string `json:"promotor"`
	Territorio   string `json:"territorio"`
	Oficina      string `json:"oficina"`
	Canal        string `json:"canal"`
	CentroCostos string `json:"centroCostos"`

	NuevoConducto          string `json:"nuevoConducto"`
	Nearshoring            string `json:"nearshoring"`
	CuentaConPlanmed       string `json:"cuentaConPlanmed"`
	Plan                   string `json:"plan"`
	PrimaCotizada          string `json:"primaCotizada"`
	Poblacion              string `json:"poblacion"`
	Incisos                string `json:"incisos"`
	Ubicaciones            string `json:"ubicaciones"`
	InstanciaFolio         string `json:"instanciaFolio"`
	ResponsableSuscripcion string `json:"responsableSuscripcion"`
	FechaSolicitud         string `json:"fechaSolicitud" validate:"ymd"`
	FechaEntrega           string `json:"fechaEntrega" validate:"ymd"`

	Observaciones string `json:"observaciones"`
}

func (AltaPayload) Step() Step             { return StepAlta }
func (p AltaPayload) Observations() string { return p.Observaciones }

// NegotiationPayload captures the negotiation outcome. The loss block
// (motivo/aseguradora/primaCompetencia) only applies when the account was
// not retained.
type NegotiationPayload struct {
	SeQuedo                  bool   `json:"seQuedo"`
	PoblacionAsegurada       string `json:"poblacionAsegurada"`
	Estatus                  string `json:"estatus"`
	PrimaAsegurados          string `json:"primaAsegurados"`
	MotivoNoGanado           string `json:"motivoNoGanado"`
	AseguradoraGanadora      string `json:"aseguradoraGanadora"`
	PrimaCompetencia         string `json:"primaCompetencia"`
	CuidadoIntegralPoblacion string `json:"cuidadoIntegralPoblacion"`
	CuidadoIntegralPrima     string `json:"cuidadoIntegralPrima"`
	Observaciones            string `json:"observaciones"`
}

func (NegotiationPayload) Step() Step             { return StepNegociacion }
func (p NegotiationPayload) Observations() string { return p.Observaciones }

// EmissionPayload captures policy issuance.
type EmissionPayload struct {
	FechaIngresoFolio        string `json:"fechaIngresoFolio" validate:"ymd"`
	FechaEmision             string `json:"fechaEmision" validate:"ymd"`
	NumPolizas               string `json:"numPolizas"`
	Poliza                   string `json:"poliza"`
	PoblacionEmitida         string `json:"poblacionEmitida"`
	CuidadoIntegralPoblacion string `json:"cuidadoIntegralPoblacion"`
	CuidadoIntegralPrima     string `json:"cuidadoIntegralPrima"`
	Observaciones            string `json:"observaciones"`
}

func (EmissionPayload) Step() Step             { return StepEmision }
func (p EmissionPayload) Observations() string { return p.Observaciones }

// ---- gorm JSON column plumbing ----

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(dst any, src any) error {
	if src == nil {
		return nil
	}
	switch b := src.(type) {
	case []byte:
		if len(b) == 0 {
			return nil
		}
		return json.Unmarshal(b, dst)
	case string:
		if b == "" {
			return nil
		}
		return json.Unmarshal([]byte(b), dst)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}
}

func (p AltaPayload) Value() (driver.Value, error)        { return jsonValue(p) }
func (p *AltaPayload) Scan(src any) error                 { return jsonScan(p, src) }
func (p NegotiationPayload) Value() (driver.Value, error) { return jsonValue(p) }
func (p *NegotiationPayload) Scan(src any) error          { return jsonScan(p, src) }
func (p EmissionPayload) Value() (driver.Value, error)    { return jsonValue(p) }
func (p *EmissionPayload) Scan(src any) error             { return jsonScan(p, src) }
