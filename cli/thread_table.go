package cli

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/weftwork/weft/api"
)

// PrintThreads renders threads as a monospace table.
func PrintThreads(w io.Writer, threads []api.Thread) error {
	table := &monospaceTable{}
	err := table.addColumn("ID", "Name", "Key", "Type", "Sharing", "Schema", "Whitelist")

	if err != nil {
		return errors.Wrap(err, "PrintThreads failed")
	}

	for _, thread := range threads {
		err = table.addRow(
			thread.ID,
			thread.Name,
			thread.Key,
			thread.Type.String(),
			thread.Sharing.String(),
			thread.Schema,
			strings.Join(thread.Whitelist, ","),
		)

		if err != nil {
			return errors.Wrap(err, "PrintThreads failed")
		}
	}

	table.fprint(w)

	return nil
}

// PrintContacts renders thread peers as a monospace table.
func PrintContacts(w io.Writer, contacts []api.Contact) error {
	table := &monospaceTable{}
	err := table.addColumn("ID", "Address", "Name")

	if err != nil {
		return errors.Wrap(err, "PrintContacts failed")
	}

	for _, contact := range contacts {
		err = table.addRow(contact.ID, contact.Address, contact.Name)

		if err != nil {
			return errors.Wrap(err, "PrintContacts failed")
		}
	}

	table.fprint(w)

	return nil
}
