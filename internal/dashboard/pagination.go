package dashboard

// PageItem is one slot in the rendered pagination strip.
type PageItem struct {
	Number   int
	Current  bool
	Ellipsis bool
}

// Window computes the pagination strip: first page, last page, current ±2,
// with ellipses standing in for the gaps.
func Window(current, total int) []PageItem {
	if total <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	show := func(p int) bool {
		return p == 1 || p == total || (p >= current-2 && p <= current+2)
	}

	var items []PageItem
	lastShown := 0
	for p := 1; p <= total; p++ {
		if !show(p) {
			continue
		}
		if lastShown != 0 && p > lastShown+1 {
			items = append(items, PageItem{Ellipsis: true})
		}
		items = append(items, PageItem{Number: p, Current: p == current})
		lastShown = p
	}
	return items
}
