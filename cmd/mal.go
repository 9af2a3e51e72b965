package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kinometa/kinometa/icon"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/log"
	"github.com/kinometa/kinometa/mal"
	"github.com/kinometa/kinometa/open"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const malCallbackHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>%[1]s</title>
    <style>
        body { margin: 0; background-color: #0f0f11; color: #ffffff; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; text-align: center; }
        h1 { font-size: 24px; font-weight: 500; margin-bottom: 8px; }
        p { font-size: 15px; color: #88888b; }
    </style>
</head>
<body>
    <div>
        <h1>%[1]s</h1>
        <p>%[2]s</p>
    </div>
</body>
</html>`

func init() {
	rootCmd.AddCommand(malCmd)
	malCmd.AddCommand(malAuthCmd)
	malCmd.AddCommand(malLogoutCmd)
}

var malCmd = &cobra.Command{
	Use:   "mal",
	Short: "Manage MyAnimeList authentication",
	Long: `The MyAnimeList source identifies itself with a client id. Logging in lets it use your
account instead, which is subject to higher rate limits.`,
}

var malAuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Log in to MyAnimeList with OAuth2 PKCE",
	Long: `Start a local callback server on port 8080, open the MyAnimeList authorization page
and store the resulting token in the system keyring.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verifier, err := mal.GenerateCodeVerifier()
		if err != nil {
			return err
		}

		codeCh := make(chan string, 1)
		errCh := make(chan error, 1)

		mux := http.NewServeMux()
		mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Query().Get("code")
			w.Header().Set("Content-Type", "text/html")
			if code == "" {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintf(w, malCallbackHTML, "Authentication Failed", "No code found in redirect URL")
				return
			}

			select {
			case codeCh <- code:
			default:
			}
			fmt.Fprintf(w, malCallbackHTML, "Authentication Successful", "You may close this tab and return to the terminal.")
		})

		server := &http.Server{Addr: ":8080", Handler: mux}
		go func() {
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		clientID := viper.GetString(key.SourcesMalClientID)
		authURL := mal.GetAuthURL(verifier, clientID)

		fmt.Println("Opening browser to:", authURL)
		if err := open.Start(authURL); err != nil {
			log.Warn("failed to open browser: " + err.Error())
		}

		var code string
		select {
		case code = <-codeCh:
		case err := <-errCh:
			return fmt.Errorf("callback server error: %w", err)
		case <-time.After(2 * time.Minute):
			return errors.New("authentication timed out")
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}

		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdown)

		token, err := mal.ExchangeCode(cmd.Context(), code, verifier, clientID)
		if err != nil {
			return err
		}

		if err := mal.SaveToken(token); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		fmt.Printf("%s logged in to MyAnimeList\n", icon.Get(icon.Success))
		return nil
	},
}

var malLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored MyAnimeList token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mal.DeleteToken(); err != nil {
			return err
		}

		fmt.Printf("%s logged out of MyAnimeList\n", icon.Get(icon.Success))
		return nil
	},
}
