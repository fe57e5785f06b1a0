package bookings

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"eventcraft/db"
	"eventcraft/models"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func qrSecret() []byte {
	if s := os.Getenv("QR_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("eventcraft-booking-ref")
}

// signedReference returns "<kind>|<bookingID>|<signature>" so the QR on a
// printed sheet can be verified against tampering.
func signedReference(kind, bookingID string) string {
	data := fmt.Sprintf("%s|%s", kind, bookingID)
	h := hmac.New(sha256.New, qrSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

func writeBookingPDF(w http.ResponseWriter, kind, bookingID string, lines []string) {
	qrPNG, err := qrcode.Encode(signedReference(kind, bookingID), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "EventCraft Booking Summary")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	for _, line := range lines {
		pdf.Cell(0, 10, line)
		pdf.Ln(8)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+bookingID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// PrintPackageBooking renders an admin-facing PDF summary sheet.
func PrintPackageBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	var booking models.PackageBooking
	err := db.PackageBookingsCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&booking)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	writeBookingPDF(w, "package", bookingID, []string{
		fmt.Sprintf("Booking ID: %s", booking.BookingID),
		fmt.Sprintf("Name: %s", booking.Name),
		fmt.Sprintf("Email: %s", booking.Email),
		fmt.Sprintf("Event: %s on %s", booking.EventType, booking.EventDate),
		fmt.Sprintf("Guests: %d", booking.GuestCount),
		fmt.Sprintf("Package: %s (PKR %.0f)", booking.PackageName, booking.PackagePrice),
		fmt.Sprintf("Status: %s", booking.Status),
	})
}

// PrintCustomizedBooking renders an admin-facing PDF summary sheet.
func PrintCustomizedBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	var booking models.CustomizedBooking
	err := db.CustomizedBookingsCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&booking)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	lines := []string{
		fmt.Sprintf("Booking ID: %s", booking.BookingID),
		fmt.Sprintf("Name: %s", booking.Name),
		fmt.Sprintf("Email: %s", booking.Email),
		fmt.Sprintf("Event: %s on %s", booking.EventType, booking.EventDate),
		fmt.Sprintf("Guests: %d", booking.GuestCount),
		fmt.Sprintf("Budget: PKR %.0f (negotiated: %t)", booking.Budget, booking.HasNegotiated),
		fmt.Sprintf("Status: %s", booking.Status),
	}
	for _, opts := range booking.SelectedServices {
		for _, opt := range opts {
			suffix := ""
			if opt.PerPerson {
				suffix = "/person"
			}
			lines = append(lines, fmt.Sprintf(" - %s (PKR %.0f%s)", opt.Name, opt.Price, suffix))
		}
	}

	writeBookingPDF(w, "customized", bookingID, lines)
}
