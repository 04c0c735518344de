package rooms

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
    metricActiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
        Name: "signal_active_rooms",
        Help: "Rooms with at least one connected participant",
    })

    metricActiveParticipants = promauto.NewGauge(prometheus.GaugeOpts{
        Name: "signal_active_participants",
        Help: "Participants currently connected across all rooms",
    })

    metricJoins = promauto.NewCounter(prometheus.CounterOpts{
        Name: "signal_joins_total",
        Help: "Total accepted room joins",
    })

    metricLeaves = promauto.NewCounter(prometheus.CounterOpts{
        Name: "signal_leaves_total",
        Help: "Total participant removals (explicit leave or disconnect)",
    })

    metricSignalsRelayed = promauto.NewCounterVec(prometheus.CounterOpts{
        Name: "signal_signals_relayed_total",
        Help: "WebRTC signaling messages relayed to a target connection",
    }, []string{"kind"})

    metricMediaToggles = promauto.NewCounterVec(prometheus.CounterOpts{
        Name: "signal_media_toggles_total",
        Help: "Media-state toggle messages applied",
    }, []string{"kind"})

    metricChatMessages = promauto.NewCounter(prometheus.CounterOpts{
        Name: "signal_chat_messages_total",
        Help: "Chat messages broadcast to rooms",
    })
)
