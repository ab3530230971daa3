package http

import (
	"net/http"
	"strings"
	"time"

	"gators-academy/backend/internal/authctx"
	"gators-academy/backend/internal/config"
	"gators-academy/backend/internal/domain/booking"
	"gators-academy/backend/internal/domain/profile"
	"gators-academy/backend/internal/domain/schedule"
	"gators-academy/backend/internal/domain/stats"
	"gators-academy/backend/internal/httpjson"
	"gators-academy/backend/internal/middleware"

	"firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
)

type RouterDeps struct {
	Cfg         config.Config
	AuthClient  *auth.Client
	ProfileSvc  *profile.Service
	BookingSvc  *booking.Service
	ScheduleSvc *schedule.Service
	StatsSvc    *stats.Service
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// Signup is the one unauthenticated write: it creates the auth
	// account and the profile, deriving the role from the email.
	r.Post("/v1/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var in profile.SignUpInput
		if err := httpjson.Read(r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}

		out, err := d.ProfileSvc.SignUp(r.Context(), in)
		if err != nil {
			status, msg := mapProfileError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 201, out)
	})

	// Protected routes
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.WithAuth(d.AuthClient))

		pr.Get("/v1/me", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			out, err := d.ProfileSvc.Get(r.Context(), sess.UID)
			if err != nil {
				// The auth account exists but the profile is gone;
				// still give the dashboard enough to render.
				WriteJSON(w, 200, map[string]any{
					"id":    sess.UID,
					"email": sess.Email,
					"role":  sess.Role,
				})
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Bookings =====
		pr.Post("/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())

			var in booking.CreateBookingInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			if !sess.Can(authctx.ActionManageBookings) {
				if !sess.Can(authctx.ActionBookSelf) {
					Fail(w, 403, "not allowed to create bookings")
					return
				}
				// Trainees book for themselves only.
				if in.StudentID == "" {
					in.StudentID = sess.UID
				}
				if in.StudentID != sess.UID {
					Fail(w, 403, "trainees can only book for themselves")
					return
				}
			}

			out, err := d.BookingSvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapBookingError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			q := r.URL.Query()

			in := booking.ListBookingsInput{
				TrainerID: strings.TrimSpace(q.Get("trainer_id")),
				StudentID: strings.TrimSpace(q.Get("student_id")),
				Day:       strings.TrimSpace(q.Get("day")),
				Status:    booking.Status(strings.TrimSpace(q.Get("status"))),
			}

			// Trainees see only their own bookings; trainers default
			// to their own roster.
			if !sess.Can(authctx.ActionManageBookings) {
				in.StudentID = sess.UID
			} else if sess.Role == authctx.RoleTrainer && in.TrainerID == "" {
				in.TrainerID = sess.UID
			}

			list, err := d.BookingSvc.List(r.Context(), in)
			if err != nil {
				status, msg := mapBookingError(err)
				Fail(w, status, msg)
				return
			}

			// Server-side projection of the dashboard's sort/search.
			if key := strings.TrimSpace(q.Get("sortBy")); key != "" {
				dir := booking.SortAsc
				if q.Get("sortDir") == string(booking.SortDesc) {
					dir = booking.SortDesc
				}
				list = booking.Sort(list, key, dir)
			}
			if term := q.Get("q"); term != "" {
				fields := booking.SearchFields{SlotFields: sess.Role == authctx.RoleTrainer}
				list = booking.FilterBySearch(list, term, fields)
			}

			WriteJSON(w, 200, list)
		})

		pr.Get("/v1/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())

			out, err := d.BookingSvc.Get(r.Context(), chi.URLParam(r, "id"))
			if err != nil {
				status, msg := mapBookingError(err)
				Fail(w, status, msg)
				return
			}
			if !sess.Can(authctx.ActionManageBookings) && out.StudentID != sess.UID {
				Fail(w, 403, "not allowed to view this booking")
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Patch("/v1/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			if !sess.Can(authctx.ActionManageBookings) {
				Fail(w, 403, "not allowed to edit bookings")
				return
			}

			var in booking.UpdateBookingInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.BookingSvc.Update(r.Context(), chi.URLParam(r, "id"), in)
			if err != nil {
				status, msg := mapBookingError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/bookings/{id}/attendance", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			if !sess.Can(authctx.ActionRecordAttendance) {
				Fail(w, 403, "not allowed to record attendance")
				return
			}

			var in struct {
				Attendance string `json:"attendance"`
			}
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.BookingSvc.SetAttendance(r.Context(), chi.URLParam(r, "id"), in.Attendance)
			if err != nil {
				status, msg := mapBookingError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			if !sess.Can(authctx.ActionManageBookings) {
				Fail(w, 403, "not allowed to delete bookings")
				return
			}

			if err := d.BookingSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
				status, msg := mapBookingError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"deleted": true})
		})

		// ===== Schedules =====
		pr.Post("/v1/schedules", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			if !sess.Can(authctx.ActionManageSchedules) {
				Fail(w, 403, "not allowed to manage schedules")
				return
			}

			var in schedule.CreateScheduleInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			// Trainers declare availability for themselves.
			if sess.Role == authctx.RoleTrainer {
				in.TrainerID = sess.UID
			}

			out, err := d.ScheduleSvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapScheduleError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/schedules", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			list, err := d.ScheduleSvc.List(r.Context(), schedule.ListSchedulesInput{
				TrainerID: strings.TrimSpace(q.Get("trainer_id")),
				Date:      strings.TrimSpace(q.Get("date")),
				Status:    schedule.Status(strings.TrimSpace(q.Get("status"))),
			})
			if err != nil {
				status, msg := mapScheduleError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, list)
		})

		// The booking form asks here once trainer and date are chosen;
		// an empty list keeps the time selector disabled.
		pr.Get("/v1/schedules/available", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			times, err := d.ScheduleSvc.AvailableTimes(r.Context(),
				strings.TrimSpace(q.Get("trainer_id")),
				strings.TrimSpace(q.Get("date")))
			if err != nil {
				status, msg := mapScheduleError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"times": times})
		})

		pr.Patch("/v1/schedules/{id}", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			if !sess.Can(authctx.ActionManageSchedules) {
				Fail(w, 403, "not allowed to manage schedules")
				return
			}

			id := chi.URLParam(r, "id")
			if sess.Role == authctx.RoleTrainer {
				existing, err := d.ScheduleSvc.Get(r.Context(), id)
				if err != nil {
					status, msg := mapScheduleError(err)
					Fail(w, status, msg)
					return
				}
				if existing.TrainerID != sess.UID {
					Fail(w, 403, "not your schedule")
					return
				}
			}

			var in schedule.UpdateScheduleInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.ScheduleSvc.Update(r.Context(), id, in)
			if err != nil {
				status, msg := mapScheduleError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/schedules/{id}", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			if !sess.Can(authctx.ActionManageSchedules) {
				Fail(w, 403, "not allowed to manage schedules")
				return
			}

			id := chi.URLParam(r, "id")
			if sess.Role == authctx.RoleTrainer {
				existing, err := d.ScheduleSvc.Get(r.Context(), id)
				if err != nil {
					status, msg := mapScheduleError(err)
					Fail(w, status, msg)
					return
				}
				if existing.TrainerID != sess.UID {
					Fail(w, 403, "not your schedule")
					return
				}
			}

			if err := d.ScheduleSvc.Delete(r.Context(), id); err != nil {
				status, msg := mapScheduleError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"deleted": true})
		})

		// ===== Profiles =====
		pr.Get("/v1/profiles", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			role := strings.TrimSpace(r.URL.Query().Get("role"))

			// Anyone may list trainers (the booking form needs them);
			// everything else is a management view.
			if role != string(authctx.RoleTrainer) && !sess.Can(authctx.ActionManageBookings) {
				Fail(w, 403, "not allowed to list profiles")
				return
			}

			list, err := d.ProfileSvc.List(r.Context(), role)
			if err != nil {
				status, msg := mapProfileError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, list)
		})

		pr.Get("/v1/profiles/{id}", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			id := chi.URLParam(r, "id")
			if id != sess.UID && !sess.Can(authctx.ActionManageProfiles) {
				Fail(w, 403, "not allowed to view this profile")
				return
			}

			out, err := d.ProfileSvc.Get(r.Context(), id)
			if err != nil {
				status, msg := mapProfileError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Patch("/v1/profiles/{id}", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			id := chi.URLParam(r, "id")
			if id != sess.UID && !sess.Can(authctx.ActionManageProfiles) {
				Fail(w, 403, "not allowed to edit this profile")
				return
			}

			var in profile.UpdateProfileInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.ProfileSvc.Update(r.Context(), id, in)
			if err != nil {
				status, msg := mapProfileError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/profiles/{id}", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			if !sess.Can(authctx.ActionManageProfiles) {
				Fail(w, 403, "not allowed to delete profiles")
				return
			}
			if chi.URLParam(r, "id") == sess.UID {
				Fail(w, 400, "cannot delete yourself")
				return
			}

			if err := d.ProfileSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
				status, msg := mapProfileError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"deleted": true})
		})

		pr.Put("/v1/profiles/{id}/email", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			if !sess.Can(authctx.ActionManageProfiles) {
				Fail(w, 403, "not allowed to change emails")
				return
			}

			var in struct {
				Email string `json:"email"`
			}
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			if err := d.ProfileSvc.UpdateEmail(r.Context(), chi.URLParam(r, "id"), strings.TrimSpace(in.Email)); err != nil {
				status, msg := mapProfileError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"updated": true})
		})

		// ===== Stats =====
		pr.Get("/v1/stats/overview", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			if sess.Role != authctx.RoleAdmin {
				Fail(w, 403, "admin only")
				return
			}

			out, err := d.StatsSvc.Overview(r.Context())
			if err != nil {
				status, msg := mapStatsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Get("/v1/stats/trainers/{id}", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			id := chi.URLParam(r, "id")
			if !sess.Can(authctx.ActionViewStats) {
				Fail(w, 403, "not allowed to view stats")
				return
			}
			if sess.Role == authctx.RoleTrainer && id != sess.UID {
				Fail(w, 403, "not your stats")
				return
			}

			out, err := d.StatsSvc.ForTrainer(r.Context(), id)
			if err != nil {
				status, msg := mapStatsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Get("/v1/stats/trainees/{id}/progress", func(w http.ResponseWriter, r *http.Request) {
			sess, _ := authctx.FromContext(r.Context())
			id := chi.URLParam(r, "id")
			if id != sess.UID && !sess.Can(authctx.ActionViewStats) {
				Fail(w, 403, "not your progress")
				return
			}

			out, err := d.StatsSvc.ForTrainee(r.Context(), id)
			if err != nil {
				status, msg := mapStatsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})
	})

	return r
}
