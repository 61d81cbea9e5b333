package domain

// TirePosition names a mounting slot on a vehicle. Keys are vehicle-shape
// relative, not globally numbered: the same key refers to the same slot on
// every vehicle whose layout includes it.
type TirePosition string

const (
	PositionFE      TirePosition = "FE" // dianteiro esquerdo
	PositionFD      TirePosition = "FD" // dianteiro direito
	PositionTDEI    TirePosition = "TDEI"
	PositionTDEE    TirePosition = "TDEE"
	PositionTDDI    TirePosition = "TDDI"
	PositionTDDE    TirePosition = "TDDE"
	PositionTTEI    TirePosition = "TTEI"
	PositionTTEE    TirePosition = "TTEE"
	PositionTTDI    TirePosition = "TTDI"
	PositionTTDE    TirePosition = "TTDE"
	PositionT3EI    TirePosition = "T3EI"
	PositionT3EE    TirePosition = "T3EE"
	PositionT3DI    TirePosition = "T3DI"
	PositionT3DE    TirePosition = "T3DE"
	PositionT1E     TirePosition = "T1E"
	PositionT1D     TirePosition = "T1D"
	PositionEstepe1 TirePosition = "Estepe1"
	PositionEstepe2 TirePosition = "Estepe2"
)

var positionLabels = map[TirePosition]string{
	PositionFE:      "Dianteiro Esquerdo",
	PositionFD:      "Dianteiro Direito",
	PositionTDEI:    "Tração Dianteira Esquerdo Interno",
	PositionTDEE:    "Tração Dianteira Esquerdo Externo",
	PositionTDDI:    "Tração Dianteira Direito Interno",
	PositionTDDE:    "Tração Dianteira Direito Externo",
	PositionTTEI:    "Terceiro Eixo Tração Esquerdo Interno",
	PositionTTEE:    "Terceiro Eixo Tração Esquerdo Externo",
	PositionTTDI:    "Terceiro Eixo Tração Direito Interno",
	PositionTTDE:    "Terceiro Eixo Tração Direito Externo",
	PositionT3EI:    "Eixo 3 Esquerdo Interno",
	PositionT3EE:    "Eixo 3 Esquerdo Externo",
	PositionT3DI:    "Eixo 3 Direito Interno",
	PositionT3DE:    "Eixo 3 Direito Externo",
	PositionT1E:     "1º Eixo Simples Esquerdo",
	PositionT1D:     "1º Eixo Simples Direito",
	PositionEstepe1: "Estepe 1",
	PositionEstepe2: "Estepe 2",
}

// Label returns the human-readable name of the position, or the raw key if
// it has none.
func (p TirePosition) Label() string {
	if l, ok := positionLabels[p]; ok {
		return l
	}
	return string(p)
}

// Known reports whether p is one of the defined position keys.
func (p TirePosition) Known() bool {
	_, ok := positionLabels[p]
	return ok
}

// AxleLayout is the set of valid mounting slots for one vehicle shape.
// Regular positions are load-bearing; spares are reserve slots that are
// still tracked.
type AxleLayout struct {
	Regular []TirePosition `json:"regular"`
	Spares  []TirePosition `json:"spares"`
	Label   string         `json:"label"`
}

// Contains reports whether pos is a valid slot (regular or spare) in the
// layout.
func (l AxleLayout) Contains(pos TirePosition) bool {
	for _, p := range l.Regular {
		if p == pos {
			return true
		}
	}
	for _, p := range l.Spares {
		if p == pos {
			return true
		}
	}
	return false
}

// ResolveLayout maps a vehicle's axle-configuration tag to its mounting
// positions. Total by design: unknown or empty tags fall back to a generic
// 4-position layout rather than failing, so a vehicle with a mistyped
// configuration still renders and still accepts mounts on the basic slots.
func ResolveLayout(axleConfig string) AxleLayout {
	switch axleConfig {
	case "4x2":
		return AxleLayout{
			Regular: []TirePosition{PositionFE, PositionFD, PositionTDEI, PositionTDEE, PositionTDDI, PositionTDDE},
			Spares:  []TirePosition{PositionEstepe1},
			Label:   "4x2 (Rodagem Dupla Traseira)",
		}
	case "6x2":
		return AxleLayout{
			Regular: []TirePosition{
				PositionFE, PositionFD,
				PositionTDEI, PositionTDEE, PositionTDDI, PositionTDDE,
				PositionT3EI, PositionT3EE, PositionT3DI, PositionT3DE,
			},
			Spares: []TirePosition{PositionEstepe1},
			Label:  "6x2 (Rodagem Dupla Eixos Traseiros)",
		}
	case "Carreta3Eixos":
		return AxleLayout{
			Regular: []TirePosition{
				PositionTDEI, PositionTDEE, PositionTDDI, PositionTDDE,
				PositionTTEI, PositionTTEE, PositionTTDI, PositionTTDE,
				PositionT3EI, PositionT3EE, PositionT3DI, PositionT3DE,
			},
			Spares: []TirePosition{PositionEstepe1},
			Label:  "Carreta 3 Eixos (Rodagem Dupla)",
		}
	case "Carro":
		return AxleLayout{
			Regular: []TirePosition{PositionFE, PositionFD, PositionT1E, PositionT1D},
			Spares:  []TirePosition{PositionEstepe1},
			Label:   "Carro de Passeio",
		}
	case "":
		return AxleLayout{
			Regular: []TirePosition{PositionFE, PositionFD, PositionT1E, PositionT1D},
			Spares:  []TirePosition{PositionEstepe1},
			Label:   "Layout Genérico (4 pneus)",
		}
	default:
		return AxleLayout{
			Regular: []TirePosition{PositionFE, PositionFD, PositionT1E, PositionT1D},
			Spares:  []TirePosition{PositionEstepe1},
			Label:   "Layout para " + axleConfig,
		}
	}
}
