package collection

import (
	"github.com/google/btree"
)

// RowContainer keeps rows sorted by id.
type RowContainer struct {
	tree *btree.BTreeG[*Row]
}

func NewRowContainer() *RowContainer {
	return &RowContainer{
		tree: btree.NewG(32, func(a, b *Row) bool { return a.Less(b) }),
	}
}

func (b *RowContainer) ReplaceOrInsert(row *Row) {
	b.tree.ReplaceOrInsert(row)
}

func (b *RowContainer) Delete(row *Row) {
	b.tree.Delete(row)
}

func (b *RowContainer) Get(id int64) (*Row, bool) {
	return b.tree.Get(&Row{I: id})
}

func (b *RowContainer) Len() int {
	return b.tree.Len()
}

// Snapshot returns a lazy copy-on-write clone. Callers must not run Snapshot
// concurrently with writes on the same container.
func (b *RowContainer) Snapshot() *RowContainer {
	return &RowContainer{
		tree: b.tree.Clone(),
	}
}

func (b *RowContainer) Traverse(iterator func(i *Row) bool) {
	b.tree.Ascend(iterator)
}
