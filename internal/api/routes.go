package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	doctors := api.Group("/doctors")
	doctors.Get("", handler.GetDoctors)
	doctors.Get("/specializations", handler.GetSpecializations)
	doctors.Get("/:id", handler.GetDoctor)
	doctors.Get("/:id/slots", handler.AuthRequired, handler.GetAvailableSlots)

	appointments := api.Group("/appointments", handler.AuthRequired)
	appointments.Get("", handler.GetMyAppointments)
	appointments.Post("", handler.PatientOnly, handler.BookAppointment)
	appointments.Post("/:id/cancel", handler.CancelAppointment)

	api.Post("/chat-assistant", handler.AuthRequired, handler.PatientOnly, handler.ChatAssistant)

	records := api.Group("/records", handler.AuthRequired, handler.PatientOnly)
	records.Get("", handler.GetMyRecords)
	records.Post("", handler.UploadRecord)
	records.Get("/:id/download", handler.DownloadRecord)

	doctor := api.Group("/doctor", handler.AuthRequired, handler.DoctorOnly)
	doctor.Get("/dashboard", handler.DoctorDashboard)
	doctor.Get("/appointments", handler.GetDoctorAppointments)
	doctor.Put("/appointments/:id/status", handler.UpdateAppointmentStatus)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/stats", handler.AdminStats)
	admin.Get("/appointments", handler.AdminAppointments)
	admin.Put("/appointments/:id/status", handler.AdminUpdateAppointmentStatus)
	admin.Post("/doctors", handler.AdminAddDoctor)
	admin.Get("/infrastructure", handler.AdminInfrastructureHealth)
	admin.Get("/audit-trail", handler.AdminAuditTrail)
}
