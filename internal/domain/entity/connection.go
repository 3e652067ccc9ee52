package entity

const (
	// ConnectionPlugin é o plugin Steampipe usado em todas as conexões geradas.
	ConnectionPlugin = "aws"

	// AggregatorName is the name of the trailing aggregator connection.
	AggregatorName = "aws"

	// AggregatorType marks a connection that fans out to other connections.
	AggregatorType = "aggregator"

	// WildcardRegion selects every region when a profile has none.
	WildcardRegion = "*"

	connectionPrefix = "aws_"
)

// Connection represents one connection block in the generated file.
type Connection struct {
	Name    string   `json:"name"`
	Plugin  string   `json:"plugin"`
	Profile string   `json:"profile"`
	Regions []string `json:"regions"`
}

// ConnectionSet is the full content of the generated connection file.
type ConnectionSet struct {
	Connections []Connection `json:"connections"`
	Aggregator  Aggregator   `json:"aggregator"`
}

// Aggregator lists every generated connection, in generation order.
type Aggregator struct {
	Name        string   `json:"name"`
	Plugin      string   `json:"plugin"`
	Type        string   `json:"type"`
	Connections []string `json:"connections"`
}

// ConnectionForProfile derives the connection block for a profile.
func ConnectionForProfile(p SSOProfile) Connection {
	regions := []string{WildcardRegion}
	if p.HasRegion() {
		regions = []string{p.Region}
	}

	return Connection{
		Name:    connectionPrefix + p.Name,
		Plugin:  ConnectionPlugin,
		Profile: p.Name,
		Regions: regions,
	}
}

// NewConnectionSet builds one connection per profile plus the aggregator.
func NewConnectionSet(profiles []SSOProfile) ConnectionSet {
	set := ConnectionSet{
		Connections: make([]Connection, 0, len(profiles)),
		Aggregator: Aggregator{
			Name:        AggregatorName,
			Plugin:      ConnectionPlugin,
			Type:        AggregatorType,
			Connections: make([]string, 0, len(profiles)),
		},
	}

	for _, p := range profiles {
		conn := ConnectionForProfile(p)
		set.Connections = append(set.Connections, conn)
		set.Aggregator.Connections = append(set.Aggregator.Connections, conn.Name)
	}

	return set
}
