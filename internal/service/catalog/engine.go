// internal/service/catalog/engine.go
package catalog

import (
	"sort"

	"rainerio-service/internal/domain/vehicle"
)

// Facets derives the filter domains from the current collection. Every
// facet leads with its "match everything" sentinel; the types facet is
// alphabetically sorted behind it, brands and colors keep first-seen order.
func Facets(vehicles []vehicle.Vehicle) vehicle.Facets {
	types := distinct(vehicles, func(v vehicle.Vehicle) string { return v.Type })
	sort.Strings(types)

	return vehicle.Facets{
		Types:  append([]string{vehicle.AllTypes}, types...),
		Brands: append([]string{vehicle.AllBrands}, distinct(vehicles, func(v vehicle.Vehicle) string { return v.Brand })...),
		Colors: append([]string{vehicle.AllColors}, distinct(vehicles, func(v vehicle.Vehicle) string { return v.Color })...),
	}
}

func distinct(vehicles []vehicle.Vehicle, field func(vehicle.Vehicle) string) []string {
	seen := make(map[string]struct{}, len(vehicles))
	var out []string
	for _, v := range vehicles {
		val := field(v)
		if _, ok := seen[val]; ok {
			continue
		}
		seen[val] = struct{}{}
		out = append(out, val)
	}
	return out
}

// ApplyFilters keeps a vehicle iff each selected facet is its sentinel or
// exactly equals the vehicle's field. Matching is case-sensitive and exact.
func ApplyFilters(vehicles []vehicle.Vehicle, f vehicle.ListFilters) []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		matchType := f.Type == "" || f.Type == vehicle.AllTypes || v.Type == f.Type
		matchBrand := f.Brand == "" || f.Brand == vehicle.AllBrands || v.Brand == f.Brand
		matchColor := f.Color == "" || f.Color == vehicle.AllColors || v.Color == f.Color
		if matchType && matchBrand && matchColor {
			out = append(out, v)
		}
	}
	return out
}

// ApplySort orders a copy of the slice by the given key. "featured" (and any
// unknown key) keeps the collection order, which callers control by
// insertion order. Price and year sorts are stable, so ties preserve the
// relative input order.
func ApplySort(vehicles []vehicle.Vehicle, key string) []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, len(vehicles))
	copy(out, vehicles)

	switch key {
	case vehicle.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceNumeric < out[j].PriceNumeric })
	case vehicle.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceNumeric > out[j].PriceNumeric })
	case vehicle.SortYearDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	}
	return out
}

// PickFeatured returns at most n vehicles for the highlights rail: featured
// ones first in collection order, then non-featured fill, never duplicating.
func PickFeatured(vehicles []vehicle.Vehicle, n int) []vehicle.Vehicle {
	if n <= 0 {
		return nil
	}

	out := make([]vehicle.Vehicle, 0, n)
	for _, v := range vehicles {
		if v.Featured {
			out = append(out, v)
			if len(out) == n {
				return out
			}
		}
	}
	for _, v := range vehicles {
		if !v.Featured {
			out = append(out, v)
			if len(out) == n {
				return out
			}
		}
	}
	return out
}
