package port

// Assign returns the ports owned by worker index out of count workers when
// scanning 1..highest: index+1, index+1+count, index+1+2*count and so on.
// The union over all indexes is exactly 1..highest and no port is owned twice.
// highest must lie in 1..65535, otherwise nil is returned.
func Assign(index, count, highest int) []uint16 {
	if count < 1 || index < 0 || index >= count || highest < 1 || highest > 65535 {
		return nil
	}
	if index+1 > highest {
		return nil
	}
	ports := make([]uint16, 0, (highest-index-1)/count+1)
	for p := index + 1; ; p += count {
		ports = append(ports, uint16(p))
		if highest-p < count {
			break
		}
	}
	return ports
}
