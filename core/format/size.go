package format

import "fmt"

const (
	// BinaryBase is the divisor between binary units.
	BinaryBase = 1024
	// DecimalBase is the divisor between decimal units.
	DecimalBase = 1000
)

var (
	binaryUnits  = []string{"KiB", "MiB", "GiB", "TiB", "PiB"}
	decimalUnits = []string{"KB", "MB", "GB", "TB", "PB"}
)

// BinarySize renders a byte count using 1024-based units (KiB up to PiB).
func BinarySize(size int64) string {
	return scale(size, BinaryBase, binaryUnits)
}

// DecimalSize renders a byte count using 1000-based units (KB up to PB).
func DecimalSize(size int64) string {
	return scale(size, DecimalBase, decimalUnits)
}

// Size picks BinarySize or DecimalSize.
func Size(size int64, decimal bool) string {
	if decimal {
		return DecimalSize(size)
	}
	return BinarySize(size)
}

func scale(size int64, base int64, units []string) string {
	if size == 1 {
		return "1byte"
	}
	if size <= base {
		return fmt.Sprintf("%dbytes", size)
	}

	s := float64(size)
	unit := ""
	// Stop at the last unit instead of running past PiB/PB.
	for _, u := range units {
		if s < float64(base) {
			break
		}
		s /= float64(base)
		unit = u
	}

	return fmt.Sprintf("%.2f%s", s, unit)
}
