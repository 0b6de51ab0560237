package service

import (
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance runs the HTTP scenarios against apiRequest, paths are relative
// to /v1.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Create client", func(a *biff.A) {
		resp := apiRequest("POST", "/clients").
			WithBodyJson(JSON{
				"firstName":   "Jan",
				"lastName":    "Kowalski",
				"phoneNumber": "600100200",
			}).Do()
		Save(resp, "Create client", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		jan := JSON{
			"id":          1,
			"firstName":   "Jan",
			"lastName":    "Kowalski",
			"phoneNumber": "600100200",
			"business":    false,
			"marketing":   false,
		}
		biff.AssertEqualJson(resp.BodyJson(), jan)

		a.Alternative("Retrieve client", func(a *biff.A) {
			resp := apiRequest("GET", "/clients/1").Do()
			Save(resp, "Retrieve client", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), jan)
		})

		a.Alternative("List clients", func(a *biff.A) {
			resp := apiRequest("GET", "/clients").Do()
			Save(resp, "List clients", `
				Clients are written as JSON lines by ascending id.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), jan)
		})

		a.Alternative("Find by phone number", func(a *biff.A) {
			resp := apiRequest("POST", "/clients:findByPhoneNumber").
				WithBodyJson(JSON{
					"phoneNumber": "600100200",
				}).Do()
			Save(resp, "Find by phone number", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{jan})
		})

		a.Alternative("Create second client", func(a *biff.A) {
			resp := apiRequest("POST", "/clients").
				WithBodyJson(JSON{
					"firstName": "Eva",
					"business":  true,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			eva := JSON{
				"id":        2,
				"firstName": "Eva",
				"business":  true,
				"marketing": false,
			}
			biff.AssertEqualJson(resp.BodyJson(), eva)

			a.Alternative("Delete first client", func(a *biff.A) {
				resp := apiRequest("DELETE", "/clients/1").Do()
				Save(resp, "Delete client", `
					Deleting a client that does not exist also answers 204.
				`)

				biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

				a.Alternative("List after delete", func(a *biff.A) {
					resp := apiRequest("GET", "/clients").Do()

					biff.AssertEqual(resp.StatusCode, http.StatusOK)
					biff.AssertEqualJson(resp.BodyJson(), eva)
				})

				a.Alternative("Delete again", func(a *biff.A) {
					resp := apiRequest("DELETE", "/clients/1").Do()

					biff.AssertEqual(resp.StatusCode, http.StatusNoContent)
				})

				a.Alternative("Retrieve deleted client", func(a *biff.A) {
					resp := apiRequest("GET", "/clients/1").Do()

					biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
				})
			})

			a.Alternative("List both clients", func(a *biff.A) {
				resp := apiRequest("GET", "/clients").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
				biff.AssertEqual(len(lines), 2)
				biff.AssertTrue(strings.Contains(lines[0], `"firstName":"Jan"`))
				biff.AssertTrue(strings.Contains(lines[1], `"firstName":"Eva"`))
			})

			a.Alternative("Search clients", func(a *biff.A) {
				resp := apiRequest("GET", "/clients").
					WithQuery("q", "EVA").Do()
				Save(resp, "Search clients", `
					Every phrase of q must be found, case insensitive, in some
					field of the client.
				`)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), eva)
			})

			a.Alternative("Search without results", func(a *biff.A) {
				resp := apiRequest("GET", "/clients").
					WithQuery("q", "jan eva").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyString(), "")
			})

			a.Alternative("Find with filter", func(a *biff.A) {
				resp := apiRequest("POST", "/clients:find").
					WithBodyJson(JSON{
						"filter": JSON{
							"business": true,
						},
					}).Do()
				Save(resp, "Find clients", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), eva)
			})

			a.Alternative("Find with skip and limit", func(a *biff.A) {
				resp := apiRequest("POST", "/clients:find").
					WithBodyJson(JSON{
						"skip":  1,
						"limit": 1,
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), eva)
			})
		})
	})

	a.Alternative("Retrieve missing client", func(a *biff.A) {
		resp := apiRequest("GET", "/clients/99").Do()
		Save(resp, "Retrieve client - not found", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Retrieve invalid id", func(a *biff.A) {
		resp := apiRequest("GET", "/clients/abc").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Create malformed client", func(a *biff.A) {
		resp := apiRequest("POST", "/clients").
			WithBodyString(`{"firstName": `).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Random client", func(a *biff.A) {
		resp := apiRequest("GET", "/clients:random").Do()
		Save(resp, "Random client", `
			Random data to fill a form, it is not stored.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJson().(JSON)
		biff.AssertNotNil(body["firstName"])
		biff.AssertNil(body["id"])
	})

	a.Alternative("Storage status", func(a *biff.A) {
		resp := apiRequest("GET", "/storage").Do()
		Save(resp, "Storage status", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"status":  "operating",
			"engine":  "json",
			"ready":   true,
			"reset":   false,
			"clients": 0,
		})
	})

	a.Alternative("Reset storage", func(a *biff.A) {
		apiRequest("POST", "/clients").WithBodyJson(JSON{"firstName": "Jan"}).Do()

		resp := apiRequest("POST", "/storage:reset").Do()
		Save(resp, "Reset storage", `
			Deletes every client. Storage is unavailable until reload.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"status":  "operating",
			"engine":  "json",
			"ready":   false,
			"reset":   true,
			"clients": 0,
		})

		a.Alternative("List after reset", func(a *biff.A) {
			resp := apiRequest("GET", "/clients").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)
		})

		a.Alternative("Reload storage", func(a *biff.A) {
			resp := apiRequest("POST", "/storage:reload").Do()
			Save(resp, "Reload storage", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			resp = apiRequest("GET", "/clients").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyString(), "")
		})
	})

	a.Alternative("Invert case", func(a *biff.A) {
		resp := apiRequest("POST", "/workers:invertCase").
			WithBodyJson(JSON{
				"firstName": "Jan",
				"email":     "Jan@Example.com",
				"business":  true,
			}).Do()
		Save(resp, "Invert case", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"firstName": "jAN",
			"email":     "jAN@eXAMPLE.COM",
			"business":  true,
			"marketing": false,
		})
	})

	a.Alternative("Tint", func(a *biff.A) {
		resp := apiRequest("POST", "/workers:tint").
			WithBodyJson(JSON{
				"firstName": "ab",
			}).Do()
		Save(resp, "Tint", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"r":   4,
			"g":   251,
			"b":   199,
			"css": "rgb(4, 251, 199)",
		})
	})

	a.Alternative("Tint invalid image", func(a *biff.A) {
		resp := apiRequest("POST", "/workers:tintImage").
			WithBodyJson(JSON{
				"image": "not an image",
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})
}
