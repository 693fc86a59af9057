package dlx

// cover unlinks c from the header ring, then removes every row intersecting
// c from the other columns those rows touch (top to bottom, left to right).
// Sizes of the affected columns shrink accordingly; c's own size is untouched.
func (m *Matrix) cover(c *column) {
	c.active = false
	c.right.left = c.left
	c.left.right = c.right
	for i := c.down; i != &c.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

// uncover is the exact inverse of cover: bottom to top, right to left, then
// relink c into the header ring. Calls must nest LIFO with cover so the link
// topology and all sizes are restored bit for bit.
func (m *Matrix) uncover(c *column) {
	for i := c.up; i != &c.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	c.right.left = &c.node
	c.left.right = &c.node
	c.active = true
}
