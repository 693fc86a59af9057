package dlx

import "fmt"

// Check audits the matrix structure: the header ring must be circular with
// reciprocal links, every column's vertical cycle must be circular, and each
// header's size must equal the actual count of linked data nodes. A non-nil
// error means the matrix is corrupt, which is a cover/uncover bug, never a
// recoverable runtime condition. Not called on the solving path.
func (m *Matrix) Check() error {
	// header ring, both directions
	steps := 0
	for p := m.root.right; p != &m.root.node; p = p.right {
		if p.right.left != p {
			return fmt.Errorf("header %s: right neighbor disagrees on left link", p.col.name)
		}
		if steps++; steps > nCols {
			return fmt.Errorf("header ring not circular after %d steps", steps)
		}
	}
	steps = 0
	for p := m.root.left; p != &m.root.node; p = p.left {
		if p.left.right != p {
			return fmt.Errorf("header %s: left neighbor disagrees on right link", p.col.name)
		}
		if steps++; steps > nCols {
			return fmt.Errorf("header ring not circular after %d reverse steps", steps)
		}
	}

	// vertical cycles and authoritative sizes, covered columns included
	for _, c := range m.cols {
		count := 0
		for n := c.down; n != &c.node; n = n.down {
			if n.down.up != n || n.up.down != n {
				return fmt.Errorf("column %s: broken vertical link at row (%d,%d)=%d",
					c.name, n.place.row, n.place.col, n.place.val)
			}
			if n.col != c {
				return fmt.Errorf("column %s: node claims membership of %s", c.name, n.col.name)
			}
			if count++; count > nRows {
				return fmt.Errorf("column %s: vertical cycle not circular", c.name)
			}
		}
		if count != c.size {
			return fmt.Errorf("column %s: size %d but %d linked nodes", c.name, c.size, count)
		}
	}
	return nil
}
