package routes

import (
	"testing"

	"github.com/julienschmidt/httprouter"
)

// httprouter panics at registration time on conflicting wildcards, so
// mounting every group on one router is the boot-time safety check.
func TestRouteRegistration(t *testing.T) {
	router := httprouter.New()

	AddAuthRoutes(router)
	AddUserRoutes(router)
	AddServiceRoutes(router)
	AddServiceCategoryRoutes(router)
	AddDealRoutes(router)
	AddAvailabilityRoutes(router)
	AddContactRoutes(router)
	AddBookingRoutes(router)
	AddPricingRoutes(router)
}

func TestCategoryRoutesShareParamName(t *testing.T) {
	router := httprouter.New()
	AddServiceCategoryRoutes(router)

	handler, ps, _ := router.Lookup("PUT", "/api/service-categories/cat1/options/opt1")
	if handler == nil {
		t.Fatal("nested option route did not resolve")
	}
	if ps.ByName("categoryId") != "cat1" || ps.ByName("optionId") != "opt1" {
		t.Fatalf("unexpected params: %+v", ps)
	}

	handler, ps, _ = router.Lookup("DELETE", "/api/service-categories/cat1")
	if handler == nil {
		t.Fatal("category delete route did not resolve")
	}
	if ps.ByName("categoryId") != "cat1" {
		t.Fatalf("unexpected params: %+v", ps)
	}
}
