package mybank

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistrationAndLogin(t *testing.T) {
	Convey("Given a new visitor with a name, email and password", t, func() {
		ctx := context.Background()
		accounts := NewAccountRepository()
		svc := NewService(accounts, &accountEventsSpy{})

		name, email, password := "Alice", "alice@test.com", "secret1"

		Convey("When she registers", func() {
			acc, err := svc.Register(ctx, registerRequest{name, email, password})
			So(err, ShouldBeNil)
			So(isValidID(string(acc.ID)), ShouldBeTrue)
			So(acc.PasswordHash, ShouldNotEqual, password)

			Convey("Then she can log in with the same credentials", func() {
				logged, err := svc.Login(ctx, loginRequest{email, password})
				So(err, ShouldBeNil)
				So(logged.ID, ShouldEqual, acc.ID)

				Convey("And a wrong password is rejected like an unknown email", func() {
					_, wrongPass := svc.Login(ctx, loginRequest{email, "wrong"})
					_, unknown := svc.Login(ctx, loginRequest{"nobody@test.com", password})
					So(wrongPass, ShouldEqual, ErrInvalidCredentials)
					So(unknown, ShouldEqual, ErrInvalidCredentials)

					Convey("And logging out always succeeds", func() {
						So(svc.Logout(ctx), ShouldBeNil)
					})
				})
			})

			Convey("Then a second registration with her email is refused", func() {
				_, err := svc.Register(ctx, registerRequest{"Impostor", " ALICE@test.com ", "secret2"})
				So(err, ShouldEqual, ErrDuplicateEmail)
			})
		})

		Convey("When she registers with a decorated email", func() {
			acc, err := svc.Register(ctx, registerRequest{name, "  Alice@Test.COM ", password})
			So(err, ShouldBeNil)

			Convey("Then login with the normalized form resolves the same account", func() {
				logged, err := svc.Login(ctx, loginRequest{"alice@test.com", password})
				So(err, ShouldBeNil)
				So(logged.ID, ShouldEqual, acc.ID)
			})
		})
	})
}
