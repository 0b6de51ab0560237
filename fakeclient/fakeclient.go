// Package fakeclient generates random but plausible client data, handy to
// fill an empty registry.
package fakeclient

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/fulldump/clientsdb/clients"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// Random returns a client with random names, address, phone and e-mail.
// Personal (pesel, identity) and business (businessName, nip) data are each
// present half of the time.
func Random(r *rand.Rand) clients.Fields {

	g := &generator{r: r}

	withPersonal := g.bool()
	withBusiness := g.bool()

	fields := clients.Fields{
		FirstName:   titleCase(g.letters(10)),
		LastName:    titleCase(g.letters(15)),
		Address:     fmt.Sprintf("%s %d/%s", titleCase(g.letters(10)), g.r.IntN(99), g.digits(1)),
		PhoneNumber: g.digits(9),
		Email:       g.letters(5) + "@" + g.letters(5) + "." + g.letters(2),
		Business:    withBusiness,
		Marketing:   g.bool(),
	}

	if withPersonal {
		fields.Pesel = g.digits(11)
		fields.Identity = strings.ToUpper(g.letters(3)) + g.digits(6)
	}

	if withBusiness {
		fields.BusinessName = titleCase(g.letters(10)) + " " + titleCase(g.letters(10))
		fields.Nip = g.digits(3) + "-" + g.digits(2) + "-" + g.digits(2) + "-" + g.digits(3)
	}

	return fields
}

type generator struct {
	r *rand.Rand
}

func (g *generator) letters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[g.r.IntN(len(letters))]
	}
	return string(b)
}

func (g *generator) digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + g.r.IntN(10))
	}
	return string(b)
}

func (g *generator) bool() bool {
	return g.r.IntN(2) == 1
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
