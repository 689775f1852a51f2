package console

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	c := NewConsole(false)
	table := c.CreateTable()
	table.AddColumn("Service")
	table.AddColumn("Cost")
	table.AddRow("Amazon EC2", "12.3450")
	table.AddRow("Total", 12.35)

	out := table.Render()
	for _, want := range []string{"Service", "Amazon EC2", "12.3450", "Total", "12.35"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered table missing %q:\n%s", want, out)
		}
	}
}

func TestStatusPlainIsNoop(t *testing.T) {
	c := NewConsole(false)
	status := c.Status("working")
	status.Update("still working")
	status.Stop()
}
