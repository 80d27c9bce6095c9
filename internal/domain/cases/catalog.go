package cases

// Ramos maps each line of business to its selectable sub-lines. A subramo is
// only meaningful under the ramo it was chosen for; changing ramo invalidates
// the previous subramo.
var Ramos = map[string][]string{
	"Autos": {"Flotillas", "Individual", "Camiones"},
	"Daños": {"Incendio", "Terremoto", "Hidrometeorológico"},
	"Vida":  {"Grupo", "Individual"},
	"GMM":   {"Colectivo", "Individual"},
}

// ValidSubramo reports whether subramo belongs to ramo's catalog.
func ValidSubramo(ramo, subramo string) bool {
	for _, s := range Ramos[ramo] {
		if s == subramo {
			return true
		}
	}
	return false
}

// Negotiation estatus values.
const (
	EstatusEnNegociacion      = "EN_NEGOCIACION"
	EstatusPropuestaEnviada   = "PROPUESTA_ENVIADA"
	EstatusPendienteRespuesta = "PENDIENTE_RESPUESTA"
	EstatusGanada             = "GANADA"
	EstatusPerdida            = "PERDIDA"
)

var negotiationEstatus = map[string]bool{
	EstatusEnNegociacion:      true,
	EstatusPropuestaEnviada:   true,
	EstatusPendienteRespuesta: true,
	EstatusGanada:             true,
	EstatusPerdida:            true,
}

func ValidNegotiationEstatus(v string) bool { return negotiationEstatus[v] }

// Loss reasons offered on the negotiation screen.
var MotivosNoGanado = []string{
	"Precio",
	"Cobertura insuficiente",
	"Servicio",
	"Relación con el agente",
	"Condiciones contractuales",
	"Otro",
}

// Competing insurers offered on the negotiation screen.
var Aseguradoras = []string{
	"GNP Seguros",
	"Zurich",
	"Chubb",
	"Mapfre",
	"HDI Seguros",
	"Allianz",
	"MetLife",
	"Otro",
}
