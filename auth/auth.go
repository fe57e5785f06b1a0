package auth

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	signupHandler(w, r)
}
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	loginHandler(w, r)
}
