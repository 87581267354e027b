package web

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	r.Use(SessionMiddleware(h))

	r.Post("/users", CreateUser(h))

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", OAuthLogin(h))
		r.Get("/callback", OAuthCallback(h))
	})
	r.Post("/logout", Logout(h))

	r.Get("/feed", Feed(h))

	r.Route("/u/{handle}", func(r chi.Router) {
		r.Get("/", GetProfile(h))
		r.Get("/thoughts", ProfileThoughts(h))
		r.Get("/followers", Followers(h))
		r.Get("/following", Following(h))
		r.Method("POST", "/follow", authenticated(Follow(h)))
		r.Method("DELETE", "/follow", authenticated(Unfollow(h)))
	})

	r.Route("/thoughts", func(r chi.Router) {
		r.Method("POST", "/", authenticated(PostThought(h)))
		r.Method("DELETE", "/{id}", authenticated(DeleteThought(h)))
		r.Method("POST", "/{id}/bookmark", authenticated(AddBookmark(h)))
		r.Method("DELETE", "/{id}/bookmark", authenticated(RemoveBookmark(h)))
	})

	r.Route("/profile", func(r chi.Router) {
		r.Method("PUT", "/", authenticated(UpdateProfile(h)))
		r.Method("POST", "/avatar", authenticated(UploadAvatar(h)))
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Method("GET", "/", authenticated(Notifications(h)))
		r.Method("GET", "/unread", authenticated(UnreadCount(h)))
		r.Method("POST", "/{id}/read", authenticated(MarkNotificationRead(h)))
		r.Method("POST", "/read-all", authenticated(MarkAllNotificationsRead(h)))
	})

	r.Method("GET", "/bookmarks", authenticated(Bookmarks(h)))

	h.MountAvatarRoutes(r)
}
