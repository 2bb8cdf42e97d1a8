package checkout

// ShippingPolicy waives the flat fee once the subtotal reaches the
// free-shipping threshold. The cost is computed once per checkout render and
// handed to the message builder, which stays pure.
type ShippingPolicy struct {
	FreeThreshold int64
	FlatFee       int64
}

func (p ShippingPolicy) Cost(subtotal int64) int64 {
	if subtotal >= p.FreeThreshold {
		return 0
	}
	return p.FlatFee
}
