/*
Package authsdk is the Go client for the inkpass authentication service, and
the home of the wire types the service itself writes.

# Client vs Session

  - Client: unauthenticated operations (login, health probes)
  - Session: a logged-in user's token plus the calls that need it

	client := authsdk.NewClient("https://auth.example.com")

	session, err := client.Authenticate(ctx, "admin", "admin123")
	if err != nil {
		log.Fatal(err)
	}

	me, err := session.CurrentUser(ctx)
	fmt.Println("logged in as", me.Username)

	_ = session.Logout(ctx)

# Single active session

The service keeps one active session per user. Logging in again from
anywhere retires every earlier token for that user, and calls made with the
old Session start failing with ErrNotAuthenticated. Tokens are not refreshed;
when one stops working, authenticate again.

# Errors

Every response body is an envelope {code, message, data}. A non-200 code is
returned as *APIError, which matches the predefined errors with errors.Is:

	_, err := client.Authenticate(ctx, "admin", "wrong")
	if errors.Is(err, authsdk.ErrBadCredentials) {
		// unknown user and wrong password look the same
	}

Sessions are safe for concurrent use.
*/
package authsdk
