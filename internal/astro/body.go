package astro

// Body identifies a chart point computed from the ephemeris.
type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mercury Body = "Mercury"
	Venus   Body = "Venus"
	Mars    Body = "Mars"
	Jupiter Body = "Jupiter"
	Saturn  Body = "Saturn"
	Uranus  Body = "Uranus"
	Neptune Body = "Neptune"
	Pluto   Body = "Pluto"
	Node    Body = "Node" // true node
	Chiron  Body = "Chiron"
)

// Point names for the two chart angles. They participate in aspect
// calculations but are not ephemeris bodies.
const (
	PointASC = "ASC"
	PointMC  = "MC"
)

// ChartBodies is the full set computed for every chart, in display order.
var ChartBodies = []Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter,
	Saturn, Uranus, Neptune, Pluto, Node, Chiron,
}

// RetrogradeBodies can station retrograde/direct. Sun and Moon never do;
// Node and Chiron are chart-only points.
var RetrogradeBodies = []Body{
	Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto,
}

// TransitBodies are the slower movers checked against natal points during a
// scan. Faster bodies would fire on nearly every day at daily sampling.
var TransitBodies = []Body{
	Mars, Jupiter, Saturn, Uranus, Neptune, Pluto,
}

// IngressBodies are watched for sign crossings during a scan.
var IngressBodies = []Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto,
}

// NatalTargets are the natal points transit aspects are tested against.
var NatalTargets = []Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto,
}
