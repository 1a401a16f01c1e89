// Package mail delivers notification messages over SMTP, or only logs them when mail is disabled.
package mail
