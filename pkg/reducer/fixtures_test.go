package reducer

type itemAdded struct {
	Item string
}

type someAction struct{}

type topicSet struct {
	Topic string
}

type filterVisibility struct {
	Visible bool
}

type appState struct {
	Topic   string
	Visible bool
	Note    string
}

type address struct {
	City     string
	StreetNr string
}

type deliveryMethod int

const (
	deliveryRegular deliveryMethod = iota
	deliveryGuaranteed
)

type destination struct {
	Addr    address
	Deliver deliveryMethod
}

type order struct {
	Destination destination
	Name        string
	Origin      address
}

type setOrigin struct{ NewAddress address }

type setDestination struct{ NewAddress address }

type behindSchedule struct{}

type setDelivery struct{ Method deliveryMethod }

func appendItem(state []string, a itemAdded) []string {
	next := make([]string, 0, len(state)+1)
	next = append(next, state...)
	return append(next, a.Item)
}
